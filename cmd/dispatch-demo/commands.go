package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/napalu/dispatch"
	"github.com/napalu/dispatch/completion"
	"github.com/napalu/dispatch/console"
	"github.com/napalu/dispatch/types"
)

const version = "0.1.0"

func newRoot() (*dispatch.Group, error) {
	db, err := newDBGroup()
	if err != nil {
		return nil, err
	}

	var root *dispatch.Group
	cfg := dispatch.NewConfig()
	for _, use := range []struct {
		name      string
		cmd       dispatch.AnyCommand
		isDefault bool
	}{
		{"greet", newGreetCommand(), false},
		{"db", db, false},
		{"completion", newCompletionCommand(func() dispatch.AnyCommand { return root }), false},
		{"version", newVersionCommand(), true},
	} {
		if err := cfg.Use(use.cmd, use.name, use.isDefault); err != nil {
			return nil, err
		}
	}

	root, err = cfg.Resolve().Group("A small demonstration of nested command dispatch")

	return root, err
}

type greetArgs struct {
	name  string
	count int
	at    time.Time
	loud  bool
}

func greetSignature(args *greetArgs) dispatch.Schema {
	return dispatch.MustSignature(
		dispatch.Argument("name", dispatch.WithSlotHelp("Who to greet"), dispatch.WithTarget(&args.name)),
		dispatch.Option("count", dispatch.WithShort("c"), dispatch.WithDefault("1"),
			dispatch.WithSlotHelp("How many times"), dispatch.WithTarget(&args.count)),
		dispatch.Option("at", dispatch.WithSlotHelp("When the greeting is meant for"), dispatch.WithTarget(&args.at)),
		dispatch.Flag("loud", dispatch.WithShort("l"), dispatch.WithSlotHelp("Shout the greeting"),
			dispatch.WithTarget(&args.loud)),
	)
}

func newGreetCommand() *dispatch.Command {
	return dispatch.NewCommand(func(ctx *dispatch.CommandContext) error {
		var args greetArgs
		if _, err := ctx.Bind(greetSignature(&args)); err != nil {
			return err
		}

		greeting := fmt.Sprintf("Hello, %s!", args.name)
		if args.loud {
			greeting = strings.ToUpper(greeting)
		}
		if !args.at.IsZero() {
			greeting += " (" + args.at.Format(time.RFC1123) + ")"
		}
		for i := 0; i < args.count; i++ {
			console.Success(ctx.Console, greeting)
		}

		return nil
	}, dispatch.WithHelp("Greets someone"), dispatch.WithSignature(func() dispatch.Schema {
		return greetSignature(&greetArgs{})
	}))
}

func newCompletionCommand(root func() dispatch.AnyCommand) *dispatch.Command {
	signature := func() dispatch.Schema {
		return dispatch.MustSignature(dispatch.Argument("shell", dispatch.WithSlotHelp("bash, zsh or fish")))
	}

	return dispatch.NewCommand(func(ctx *dispatch.CommandContext) error {
		var shell string
		sig := dispatch.MustSignature(dispatch.Argument("shell", dispatch.WithTarget(&shell)))
		if _, err := ctx.Bind(sig); err != nil {
			return err
		}

		script, err := dispatch.GenerateCompletion(root(), shell, ctx.Input.ExecutableName())
		if err != nil {
			return err
		}
		ctx.Console.Output(script, types.Plain, false)

		return nil
	}, dispatch.WithHelp("Prints a shell completion script"), dispatch.WithSignature(signature),
		dispatch.WithAutoComplete(completion.Shells()...))
}

func newVersionCommand() *dispatch.Command {
	return dispatch.NewCommand(func(ctx *dispatch.CommandContext) error {
		console.Print(ctx.Console, ctx.Input.ExecutableName()+" "+version)
		return nil
	}, dispatch.WithHelp("Prints the version"))
}

func newDBGroup() (*dispatch.Group, error) {
	status := dispatch.NewCommand(func(ctx *dispatch.CommandContext) error {
		console.Info(ctx.Console, "database is up to date")
		return nil
	}, dispatch.WithHelp("Shows migration status"))

	migrate := dispatch.NewCommand(func(ctx *dispatch.CommandContext) error {
		vals, err := ctx.Bind(migrateSignature())
		if err != nil {
			return err
		}
		target, _ := vals.Option("to")
		if vals.Flag("dry-run") {
			console.Warning(ctx.Console, "would migrate to "+target)
			return nil
		}
		console.Success(ctx.Console, "migrated to "+target)

		return nil
	}, dispatch.WithHelp("Runs pending migrations"), dispatch.WithSignature(migrateSignature))

	seed := dispatch.NewCommand(func(ctx *dispatch.CommandContext) error {
		vals, err := ctx.Bind(seedSignature())
		if err != nil {
			return err
		}
		fixture, _ := vals.Argument("fixture")
		console.Success(ctx.Console, "loaded "+fixture)

		return nil
	}, dispatch.WithHelp("Loads a fixture"), dispatch.WithSignature(seedSignature),
		dispatch.WithAutoComplete("users", "orders"))

	return dispatch.NewGroup(
		dispatch.WithGroupHelp("Database maintenance"),
		dispatch.WithCommand("migrate", migrate),
		dispatch.WithCommand("seed", seed),
		dispatch.WithCommand("status", status),
		dispatch.WithDefaultCommand(status),
	)
}

func migrateSignature() dispatch.Schema {
	return dispatch.MustSignature(
		dispatch.Option("to", dispatch.WithDefault("latest"), dispatch.WithSlotHelp("Target version")),
		dispatch.Flag("dry-run", dispatch.WithShort("n"), dispatch.WithSlotHelp("Only report what would change")),
	)
}

func seedSignature() dispatch.Schema {
	return dispatch.MustSignature(
		dispatch.Argument("fixture", dispatch.WithSlotHelp("Fixture to load")),
	)
}
