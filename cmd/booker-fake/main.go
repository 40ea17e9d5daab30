/*
Copyright 2026 Nscale.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/zapr"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/unikorn-cloud/booker/pkg/constants"
	"github.com/unikorn-cloud/booker/pkg/server"
)

func main() {
	var options server.Options

	options.AddFlags(pflag.CommandLine)

	verbosity := pflag.Int("v", 0, "Log verbosity, higher is noisier.")

	pflag.Parse()

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.Level(-*verbosity))

	zl, err := config.Build()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	defer func() {
		_ = zl.Sync()
	}()

	logger := zapr.NewLogger(zl)

	logger.WithName("init").Info("service starting", "application", constants.Application, "version", constants.Version, "revision", constants.Revision)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	s, err := server.New(&options, logger)
	if err != nil {
		logger.Error(err, "failed to create server")
		os.Exit(1)
	}

	if err := s.Run(ctx); err != nil {
		logger.Error(err, "server failed")
		os.Exit(1)
	}
}
