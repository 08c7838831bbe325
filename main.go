package main

import (
	"errors"
	"os"

	"github.com/sirupsen/logrus"

	"laptudirm.com/x/doubles/internal/doubles/cmd"
	"laptudirm.com/x/doubles/pkg/store"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := doubles(); err != nil {
		if errors.Is(err, store.ErrNoSession) {
			logrus.Fatal("no session in progress, start one with `doubles new`")
		}

		logrus.Fatal(err)
	}
}

func doubles() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
