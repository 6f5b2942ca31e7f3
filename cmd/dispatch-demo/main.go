package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/napalu/dispatch"
	"github.com/napalu/dispatch/console"
	"github.com/napalu/dispatch/i18n"
	"github.com/napalu/dispatch/input"
)

var globalOptions = []input.ConfigureFunc{
	input.WithValueOptions("log-file", "lang"),
}

func main() {
	os.Exit(run(os.Args))
}

func run(args []string) int {
	stderr := console.Stderr()

	in, err := input.Parse(args, globalOptions...)
	if err != nil {
		console.Error(stderr, err.Error())
		return 1
	}

	if lang, found := in.LookupOption("lang", ""); found {
		if err := setLanguage(lang); err != nil {
			console.Warning(stderr, err.Error())
		}
	}

	logFile, _ := in.LookupOption("log-file", "")
	logger, closer := newLogger(logFile, in.HasFlag("verbose", "v"))
	defer closer.Close()

	root, err := newRoot()
	if err != nil {
		console.Error(stderr, err.Error())
		return 1
	}

	err = dispatch.Execute(root, args,
		dispatch.WithConsole(console.Stdout()),
		dispatch.WithLogger(logger),
		dispatch.WithInputConfig(globalOptions...),
	)
	if err != nil {
		logger.Debug("command failed", "error", err)
		console.Error(stderr, err.Error())
		var unknown *dispatch.UnknownCommandError
		if errors.As(err, &unknown) && unknown.Hint() != "" {
			console.Warning(stderr, unknown.Hint())
		}
		return 1
	}

	return 0
}

func setLanguage(lang string) error {
	bundle := i18n.Default()
	tag, err := bundle.Match(lang)
	if err != nil {
		return fmt.Errorf("language %q: %w", lang, err)
	}

	return bundle.SetDefaultLanguage(tag)
}
