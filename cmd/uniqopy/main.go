// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"

	"github.com/walteh/uniqopy/pkg/log"
	"github.com/walteh/uniqopy/pkg/operation"
)

// Exit statuses. Each failure class gets its own status so scripts can react
// to specific failures.
const (
	exitOK    = 0
	exitUsage = 1 // wrong argument count, no filesystem access attempted
	exitRead  = 2 // source unreadable while hashing
	exitName  = 3 // destination name could not be constructed
	exitCopy  = 4 // destination unwritable
)

func main() {
	os.Exit(newApp(os.Stdout, os.Stderr).run(context.Background(), os.Args[1:]))
}

// 🎮 app wires the command to its output streams, so tests can capture both.
type app struct {
	stdout  io.Writer
	stderr  io.Writer
	debug   bool
	console *log.Logger
}

func newApp(stdout, stderr io.Writer) *app {
	return &app{stdout: stdout, stderr: stderr}
}

// 🏭 newRootCmd creates the root command
func (a *app) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uniqopy <file>",
		Short: "Copy a file under a name carrying its content hash and a timestamp",
		Long: `Create a copy of a file incorporating its MD5 hash and the current
local timestamp into the new file's name. The file's extension will
be retained.`,
		Example: `  example -> example.2022-02-02-22:22:22.d41d8cd98f00b204e9800998ecf8427e
  example.txt -> example.2022-02-02-22:22:22.d41d8cd98f00b204e9800998ecf8427e.txt`,
		Args:          cobra.ExactArgs(1),
		Version:       GetVersionInfo().Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.InfoLevel
			if a.debug {
				level = zerolog.DebugLevel
			}
			a.console = log.New(a.stdout, a.stderr, level)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := a.console.Zerolog().WithContext(cmd.Context())

			op, err := operation.New(operation.Options{
				Source:  args[0],
				Console: a.console,
			})
			if err != nil {
				return err
			}

			_, err = op.Execute(ctx)
			return err
		},
	}

	cmd.PersistentFlags().BoolVarP(&a.debug, "debug", "d", false, "enable debug logging")
	cmd.SetVersionTemplate(FormatVersion())

	return cmd
}

// 🏃 run executes the command and maps the outcome to an exit status.
func (a *app) run(ctx context.Context, args []string) int {
	cmd := a.newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return exitOK
	}

	var stageErr *operation.StageError
	if errors.As(err, &stageErr) {
		a.console.Error(err.Error())
		return exitStatus(err)
	}

	// Wrong argument count or bad flags: usage on stderr, nothing touched.
	fmt.Fprintf(a.stderr, "%s\n\n%s", err, cmd.UsageString())
	return exitUsage
}

// 📊 exitStatus maps a pipeline failure to its process exit status.
func exitStatus(err error) int {
	var stageErr *operation.StageError
	if !errors.As(err, &stageErr) {
		return exitUsage
	}
	switch stageErr.Stage {
	case operation.StageRead:
		return exitRead
	case operation.StageName:
		return exitName
	case operation.StageCopy:
		return exitCopy
	default:
		return exitUsage
	}
}
