package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/yeisme/zipling/pkg/analyzer"
)

// watchOptions 存放 watch 命令的可配置参数
type watchOptions struct {
	docker   bool
	format   string
	debounce time.Duration
}

var watchOpts = watchOptions{
	format:   "table",
	debounce: 500 * time.Millisecond,
}

var watchCmd = &cobra.Command{
	Use:   "watch <archive.zip>",
	Short: "Re-analyze an archive whenever it changes",
	Long: `Watch monitors the archive file and re-runs the analysis after each
change, with a debounce so that half-written uploads are not analyzed.
Press Ctrl-C to stop.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		archive, err := filepath.Abs(args[0])
		if err != nil {
			return err
		}

		opts := ziplingCtx.Config.Linguist.ToOptions()
		if watchOpts.docker {
			opts.Mode = analyzer.ModeDocker
		}

		run := func() {
			result, err := analyzer.Analyze(archive, opts)
			if err != nil {
				log.Error().Err(err).Msg("analysis failed")
				return
			}
			if err := renderResult(cmd, result, watchOpts.format); err != nil {
				log.Error().Err(err).Msg("render failed")
			}
		}

		// 首次立即分析一遍
		run()

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("create watcher: %w", err)
		}
		defer func() {
			_ = watcher.Close()
		}()

		// 监听父目录而不是文件本身：编辑器/上传通常以 rename 替换文件，
		// 直接 watch 文件会在第一次替换后失效
		if err := watcher.Add(filepath.Dir(archive)); err != nil {
			return fmt.Errorf("watch %s: %w", filepath.Dir(archive), err)
		}

		log.Info().Str("archive", archive).Msg("watching for changes")

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		var timer *time.Timer
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return nil
				}
				if filepath.Clean(event.Name) != archive {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}
				log.Debug().Str("op", event.Op.String()).Msg("archive changed")
				if timer == nil {
					timer = time.AfterFunc(watchOpts.debounce, run)
				} else {
					timer.Reset(watchOpts.debounce)
				}
			case watchErr, ok := <-watcher.Errors:
				if !ok {
					return nil
				}
				log.Error().Err(watchErr).Msg("watcher error")
			case <-sig:
				if timer != nil {
					timer.Stop()
				}
				return nil
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().BoolVar(&watchOpts.docker, "docker", false, "run the classifier inside a container")
	watchCmd.Flags().StringVar(&watchOpts.format, "format", watchOpts.format, "output format: table, json, yaml or markdown")
	watchCmd.Flags().DurationVar(&watchOpts.debounce, "debounce", watchOpts.debounce, "delay before re-analyzing after a change")
}
