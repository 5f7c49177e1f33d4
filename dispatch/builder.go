package dispatch

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/vilaureu/gamebridge"
	"github.com/vilaureu/gamebridge/buffer"
	"github.com/vilaureu/gamebridge/errors"
	"github.com/vilaureu/gamebridge/instance"
)

// New builds the dispatch table for game type G.
//
// Unconditional operations are always wired; optional operations are wired
// exactly when their capability flag is set in meta.Features, and left nil
// otherwise. A capability flag without the matching interface on G, or
// empty metadata names, are configuration defects reported as a build-time
// error, never as a per-call one.
func New[G Game[G]](meta Metadata, factory Factory[G]) (*Table, error) {
	if err := checkMetadata[G](meta); err != nil {
		return nil, err
	}

	reg := instance.NewRegistry[G](meta.Features)
	t := &Table{Metadata: meta}

	t.GetLastError = func(h instance.Handle) string {
		msg, _ := reg.Get(h).Errors().Last()
		return msg
	}

	t.Create = func(init gamebridge.GameInit) (instance.Handle, errors.Code) {
		h, err := reg.Create(func() (G, gamebridge.CapacityContract, error) {
			return factory(init)
		})
		if err != nil {
			Logger().Debug("create failed",
				zap.String("game", meta.GameName), zap.Error(err))
			return h, errors.CodeOf(err)
		}
		Logger().Debug("instance created",
			zap.String("game", meta.GameName), zap.Uint32("handle", uint32(h)))
		return h, errors.Ok
	}

	t.Contract = func(h instance.Handle) gamebridge.CapacityContract {
		return reg.Get(h).Contract()
	}

	t.Destroy = func(h instance.Handle) errors.Code {
		reg.Destroy(h)
		Logger().Debug("instance destroyed",
			zap.String("game", meta.GameName), zap.Uint32("handle", uint32(h)))
		return errors.Ok
	}

	t.Clone = func(h instance.Handle) (instance.Handle, errors.Code) {
		return reg.Clone(h), errors.Ok
	}

	t.CopyFrom = func(dst, src instance.Handle) errors.Code {
		env := reg.Get(dst)
		other := *reg.Get(src).State()
		if err := (*env.State()).CopyFrom(other); err != nil {
			return fail(env, err)
		}
		return errors.Ok
	}

	t.Compare = func(a, b instance.Handle) (bool, errors.Code) {
		equal := (*reg.Get(a).State()).Equal(*reg.Get(b).State())
		return equal, errors.Ok
	}

	t.ImportState = func(h instance.Handle, state *string) errors.Code {
		env := reg.Get(h)
		if err := (*env.State()).ImportState(state); err != nil {
			return fail(env, err)
		}
		return errors.Ok
	}

	t.ExportState = func(h instance.Handle, mem []byte) (int, errors.Code) {
		env := reg.Get(h)
		txt := buffer.NewText(mem, env.Contract().StateLen)
		if err := (*env.State()).ExportState(txt); err != nil {
			return 0, fail(env, err)
		}
		txt.Terminate()
		return txt.Len(), errors.Ok
	}

	t.PlayersToMove = func(h instance.Handle, mem []gamebridge.PlayerID) (int, errors.Code) {
		env := reg.Get(h)
		buf := buffer.New(mem, int(env.Contract().MaxPlayersToMove))
		if err := (*env.State()).PlayersToMove(buf); err != nil {
			return 0, fail(env, err)
		}
		return buf.Len(), errors.Ok
	}

	t.GetConcreteMoves = func(h instance.Handle, player gamebridge.PlayerID, mem []gamebridge.MoveCode) (int, errors.Code) {
		env := reg.Get(h)
		buf := buffer.New(mem, int(env.Contract().MaxMoves))
		if err := (*env.State()).ConcreteMoves(player, buf); err != nil {
			return 0, fail(env, err)
		}
		return buf.Len(), errors.Ok
	}

	t.IsLegalMove = func(h instance.Handle, player gamebridge.PlayerID, move gamebridge.MoveCode) errors.Code {
		env := reg.Get(h)
		if err := (*env.State()).IsLegalMove(player, move); err != nil {
			return fail(env, err)
		}
		return errors.Ok
	}

	t.MakeMove = func(h instance.Handle, player gamebridge.PlayerID, move gamebridge.MoveCode) errors.Code {
		env := reg.Get(h)
		if err := (*env.State()).MakeMove(player, move); err != nil {
			return fail(env, err)
		}
		return errors.Ok
	}

	t.GetResults = func(h instance.Handle, mem []gamebridge.PlayerID) (int, errors.Code) {
		env := reg.Get(h)
		buf := buffer.New(mem, int(env.Contract().MaxResults))
		if err := (*env.State()).Results(buf); err != nil {
			return 0, fail(env, err)
		}
		return buf.Len(), errors.Ok
	}

	t.GetMoveCode = func(h instance.Handle, player gamebridge.PlayerID, s string) (gamebridge.MoveCode, errors.Code) {
		env := reg.Get(h)
		move, err := (*env.State()).MoveCode(player, s)
		if err != nil {
			return gamebridge.MoveNone, fail(env, err)
		}
		return move, errors.Ok
	}

	t.GetMoveStr = func(h instance.Handle, player gamebridge.PlayerID, move gamebridge.MoveCode, mem []byte) (int, errors.Code) {
		env := reg.Get(h)
		txt := buffer.NewText(mem, env.Contract().MoveLen)
		if err := (*env.State()).MoveString(player, move, txt); err != nil {
			return 0, fail(env, err)
		}
		txt.Terminate()
		return txt.Len(), errors.Ok
	}

	if meta.Features.Options {
		t.ExportOptions = func(h instance.Handle, mem []byte) (int, errors.Code) {
			env := reg.Get(h)
			txt := buffer.NewText(mem, env.Contract().OptionsLen)
			if err := any(*env.State()).(OptionsExporter).ExportOptions(txt); err != nil {
				return 0, fail(env, err)
			}
			txt.Terminate()
			return txt.Len(), errors.Ok
		}
	}

	if meta.Features.Print {
		t.Print = func(h instance.Handle, mem []byte) (int, errors.Code) {
			env := reg.Get(h)
			txt := buffer.NewText(mem, env.Contract().PrintLen)
			if err := any(*env.State()).(Printer).Print(txt); err != nil {
				return 0, fail(env, err)
			}
			txt.Terminate()
			return txt.Len(), errors.Ok
		}
	}

	t.live = reg.Len
	t.close = reg.Close

	Logger().Debug("table built",
		zap.String("game", meta.GameName),
		zap.String("variant", meta.VariantName),
		zap.Bool("options", meta.Features.Options),
		zap.Bool("print", meta.Features.Print))

	return t, nil
}

// checkMetadata is the build-time half of the contract validator: name and
// capability configuration problems surface here, before the host ever sees
// the table.
func checkMetadata[G Game[G]](meta Metadata) error {
	if meta.GameName == "" {
		return fmt.Errorf("dispatch: game name must not be empty")
	}
	if meta.VariantName == "" {
		return fmt.Errorf("dispatch: variant name must not be empty")
	}
	if meta.ImplName == "" {
		return fmt.Errorf("dispatch: implementor name must not be empty")
	}

	var probe G
	if meta.Features.Options {
		if _, ok := any(probe).(OptionsExporter); !ok {
			return fmt.Errorf("dispatch: options capability enabled but %T does not implement OptionsExporter", probe)
		}
	}
	if meta.Features.Print {
		if _, ok := any(probe).(Printer); !ok {
			return fmt.Errorf("dispatch: print capability enabled but %T does not implement Printer", probe)
		}
	}
	return nil
}

// fail stores err in the instance's error channel and maps it to its wire
// code. Success paths never touch the channel.
func fail[G any](env *instance.Envelope[G], err error) errors.Code {
	env.Errors().Set(err)
	return errors.CodeOf(err)
}
