package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/vilaureu/gamebridge"
	"github.com/vilaureu/gamebridge/dispatch"
	"github.com/vilaureu/gamebridge/errors"
	"github.com/vilaureu/gamebridge/examples/nim"
	"github.com/vilaureu/gamebridge/instance"
)

func main() {
	var (
		opts        = flag.String("opts", "", "Game options text (e.g. \"21 3\")")
		state       = flag.String("state", "", "Initial state text (e.g. \"A 21\")")
		moves       = flag.String("moves", "", "Moves to apply (comma-separated, e.g. \"3,2,1\")")
		list        = flag.Bool("list", false, "List metadata and legal moves and exit")
		interactive = flag.Bool("i", false, "Interactive mode with TUI")
		verbose     = flag.Bool("v", false, "Verbose bridge logging")
	)
	flag.Parse()

	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		dispatch.SetLogger(logger)
	}

	if *interactive {
		if err := runInteractive(*opts, *state); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := run(*opts, *state, *moves, *list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// session holds one scripted or interactive game behind its table.
type session struct {
	table  *dispatch.Table
	handle instance.Handle
}

func newSession(opts, state string) (*session, error) {
	table, err := nim.NewTable()
	if err != nil {
		return nil, fmt.Errorf("build table: %w", err)
	}

	init := gamebridge.GameInit{}
	if opts != "" {
		init.Options = &opts
	}
	if state != "" {
		init.State = &state
	}

	handle, code := table.Create(init)
	if code != errors.Ok {
		msg := table.GetLastError(handle)
		table.Destroy(handle)
		table.Close()
		return nil, fmt.Errorf("create game: [%s] %s", code, msg)
	}
	return &session{table: table, handle: handle}, nil
}

func (s *session) close() {
	s.table.Destroy(s.handle)
	s.table.Close()
}

func (s *session) render() (string, error) {
	mem := make([]byte, s.table.Contract(s.handle).PrintLen)
	n, code := s.table.Print(s.handle, mem)
	if code != errors.Ok {
		return "", fmt.Errorf("print: [%s] %s", code, s.table.GetLastError(s.handle))
	}
	return string(mem[:n]), nil
}

func (s *session) mover() (gamebridge.PlayerID, bool) {
	mem := make([]gamebridge.PlayerID, s.table.Contract(s.handle).MaxPlayersToMove)
	n, _ := s.table.PlayersToMove(s.handle, mem)
	if n == 0 {
		return gamebridge.PlayerNone, false
	}
	return mem[0], true
}

func (s *session) legalMoves(p gamebridge.PlayerID) []string {
	contract := s.table.Contract(s.handle)
	mem := make([]gamebridge.MoveCode, contract.MaxMoves)
	n, _ := s.table.GetConcreteMoves(s.handle, p, mem)

	texts := make([]string, 0, n)
	buf := make([]byte, contract.MoveLen)
	for _, move := range mem[:n] {
		ln, code := s.table.GetMoveStr(s.handle, p, move, buf)
		if code != errors.Ok {
			continue
		}
		texts = append(texts, string(buf[:ln]))
	}
	return texts
}

// apply decodes, checks and plays one move for the current mover.
func (s *session) apply(text string) error {
	p, ok := s.mover()
	if !ok {
		return fmt.Errorf("game is already over")
	}
	move, code := s.table.GetMoveCode(s.handle, p, text)
	if code != errors.Ok {
		return fmt.Errorf("[%s] %s", code, s.table.GetLastError(s.handle))
	}
	if code := s.table.IsLegalMove(s.handle, p, move); code != errors.Ok {
		return fmt.Errorf("[%s] %s", code, s.table.GetLastError(s.handle))
	}
	if code := s.table.MakeMove(s.handle, p, move); code != errors.Ok {
		return fmt.Errorf("[%s] %s", code, s.table.GetLastError(s.handle))
	}
	return nil
}

func (s *session) winners() []gamebridge.PlayerID {
	mem := make([]gamebridge.PlayerID, s.table.Contract(s.handle).MaxResults)
	n, _ := s.table.GetResults(s.handle, mem)
	return mem[:n]
}

func run(opts, state, moves string, listOnly bool) error {
	s, err := newSession(opts, state)
	if err != nil {
		return err
	}
	defer s.close()

	fmt.Printf("Game: %s (%s) by %s v%d.%d.%d\n",
		s.table.GameName, s.table.VariantName, s.table.ImplName,
		s.table.Version.Major, s.table.Version.Minor, s.table.Version.Patch)

	board, err := s.render()
	if err != nil {
		return err
	}
	fmt.Print(board)

	if listOnly {
		if p, ok := s.mover(); ok {
			fmt.Printf("Player %d to move: %s\n", p, strings.Join(s.legalMoves(p), ", "))
		}
		return nil
	}

	if moves != "" {
		for _, text := range strings.Split(moves, ",") {
			text = strings.TrimSpace(text)
			if err := s.apply(text); err != nil {
				return fmt.Errorf("move %q: %w", text, err)
			}
			board, err := s.render()
			if err != nil {
				return err
			}
			fmt.Print(board)
		}
	}

	if _, ok := s.mover(); !ok {
		for _, w := range s.winners() {
			fmt.Printf("Winner: player %d\n", w)
		}
	}
	return nil
}
