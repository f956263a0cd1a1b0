package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/osse101/ArkTools_Go/internal/domain"
	"github.com/osse101/ArkTools_Go/internal/logger"
	"github.com/osse101/ArkTools_Go/internal/metrics"
	"github.com/osse101/ArkTools_Go/internal/property"
	"github.com/osse101/ArkTools_Go/internal/transfer"
	"github.com/osse101/ArkTools_Go/internal/utils"
	"github.com/osse101/ArkTools_Go/internal/worker"
)

const (
	cmdClusterUpload   = "cluster-upload"
	cmdClusterImport   = "cluster-import"
	cmdInventoryAdd    = "inventory-add"
	cmdInventoryExport = "inventory-export"
)

const (
	logMsgFileConverted = "File converted"
	logMsgItemsSkipped  = "Items skipped"
	logMsgTargets       = "Target inventories"
)

// ClusterUpload

type clusterUploadCommand struct{}

func (c *clusterUploadCommand) Name() string  { return cmdClusterUpload }
func (c *clusterUploadCommand) Usage() string { return "<modfile|glob> <out>" }
func (c *clusterUploadCommand) Description() string {
	return "Encode the cluster records of modification files as cluster entries"
}

func (c *clusterUploadCommand) Run(ctx context.Context, env *runEnv, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	return forEachInput(ctx, env, c.Name(), args[0], args[1], func(ctx context.Context, in, out string) error {
		f, err := env.loader.Load(ctx, in)
		if err != nil {
			return err
		}
		result, err := env.service.UploadToCluster(ctx, f.Cluster)
		if result != nil {
			env.stats.add(len(result.Entries), len(result.Failures))
			reportFailures(ctx, in, result.Failures)
		}
		if err != nil {
			return err
		}
		return utils.SaveJSON(out, result.Entries, env.opts.pretty)
	})
}

// ClusterImport

type clusterImportCommand struct{}

func (c *clusterImportCommand) Name() string  { return cmdClusterImport }
func (c *clusterImportCommand) Usage() string { return "<cluster.json|glob> <out>" }
func (c *clusterImportCommand) Description() string {
	return "Convert cluster entries to JSON item records"
}

func (c *clusterImportCommand) Run(ctx context.Context, env *runEnv, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	return forEachInput(ctx, env, c.Name(), args[0], args[1], func(ctx context.Context, in, out string) error {
		var entries []*property.List
		if err := utils.LoadJSON(in, &entries); err != nil {
			return err
		}
		records, failures := env.service.ImportCluster(ctx, entries)
		env.stats.add(len(records), len(failures))
		reportFailures(ctx, in, failures)
		return utils.SaveJSON(out, records, env.opts.pretty)
	})
}

// InventoryAdd

type inventoryAddCommand struct{}

func (c *inventoryAddCommand) Name() string  { return cmdInventoryAdd }
func (c *inventoryAddCommand) Usage() string { return "<archive.json> <modfile> <out>" }
func (c *inventoryAddCommand) Description() string {
	return "Append the inventory records of a modification file to a save dump"
}

func (c *inventoryAddCommand) Run(ctx context.Context, env *runEnv, args []string) (err error) {
	if len(args) != 3 {
		return errUsage
	}
	defer func() { metrics.RecordFile(c.Name(), err) }()

	archive := &property.Archive{}
	if err := utils.LoadJSON(args[0], archive); err != nil {
		return err
	}
	defer env.service.Release(archive)
	f, err := env.loader.Load(ctx, args[1])
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Debug(logMsgTargets, "inventories", f.InventoryIDs(), "objects", len(archive.Objects))
	result, err := env.service.AddToInventories(ctx, archive, f.Inventories)
	if result != nil {
		env.stats.add(len(result.Added), len(result.Failures))
		reportFailures(ctx, args[1], result.Failures)
	}
	if err != nil {
		return err
	}
	return utils.SaveJSON(args[2], archive, env.opts.pretty)
}

// InventoryExport

type inventoryExportCommand struct{}

func (c *inventoryExportCommand) Name() string  { return cmdInventoryExport }
func (c *inventoryExportCommand) Usage() string { return "<archive.json> <inventoryId> <out>" }
func (c *inventoryExportCommand) Description() string {
	return "Convert the items of one inventory to JSON item records"
}

func (c *inventoryExportCommand) Run(ctx context.Context, env *runEnv, args []string) (err error) {
	if len(args) != 3 {
		return errUsage
	}
	id, err := strconv.ParseInt(args[1], 10, 32)
	if err != nil || id < 0 {
		return fmt.Errorf("%w: inventory id %q", domain.ErrInvalidInput, args[1])
	}
	defer func() { metrics.RecordFile(c.Name(), err) }()

	archive := &property.Archive{}
	if err := utils.LoadJSON(args[0], archive); err != nil {
		return err
	}
	records, err := env.service.ExportInventory(ctx, archive, int32(id))
	if err != nil {
		return err
	}
	env.stats.add(len(records), 0)
	return utils.SaveJSON(args[2], records, env.opts.pretty)
}

type convertFunc func(ctx context.Context, in, out string) error

// forEachInput runs convert once per file matched by pattern. A single match
// writes to out; several matches write into the directory out, one file per
// input named after it. With --parallel the files run on a worker pool.
func forEachInput(ctx context.Context, env *runEnv, command, pattern, out string, convert convertFunc) error {
	inputs, err := expandInputs(pattern)
	if err != nil {
		return err
	}

	job := func(in string) worker.JobFunc {
		target := out
		if len(inputs) > 1 {
			target = filepath.Join(out, filepath.Base(in))
		}
		return func(ctx context.Context) error {
			err := convert(ctx, in, target)
			metrics.RecordFile(command, err)
			if err != nil {
				return fmt.Errorf("%s: %w", in, err)
			}
			logger.FromContext(ctx).Debug(logMsgFileConverted, logger.AttrKeyInput, in, logger.AttrKeyOutput, target)
			return nil
		}
	}

	if len(inputs) == 1 {
		return job(inputs[0]).Process(ctx)
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", out, err)
	}

	if !env.opts.parallel {
		var errs []error
		for _, in := range inputs {
			if err := ctx.Err(); err != nil {
				return errors.Join(append(errs, err)...)
			}
			if err := job(in).Process(ctx); err != nil {
				errs = append(errs, err)
			}
		}
		return errors.Join(errs...)
	}

	pool := worker.NewPool(env.cfg.Workers, env.cfg.QueueSize)
	pool.Start(ctx)
	var enqueueErr error
	for _, in := range inputs {
		if enqueueErr = pool.Enqueue(ctx, job(in)); enqueueErr != nil {
			break
		}
	}
	return errors.Join(enqueueErr, pool.Stop())
}

func expandInputs(pattern string) ([]string, error) {
	if pattern == utils.StdioPath {
		return []string{pattern}, nil
	}
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: bad pattern %q: %v", errUsage, pattern, err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no input matches %q", pattern)
	}
	return matches, nil
}

func reportFailures(ctx context.Context, in string, failures []transfer.ItemFailure) {
	if err := transfer.JoinFailures(failures); err != nil {
		logger.FromContext(ctx).Error(logMsgItemsSkipped, logger.AttrKeyInput, in, "count", len(failures), "error", err)
	}
}
