package main

import (
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/spf13/cobra"

	"github.com/reactor-ui/reactor/pkg/assets"
)

func deployCmd() *cobra.Command {
	var (
		bucket string
		prefix string
		prune  bool
	)

	cmd := &cobra.Command{
		Use:   "deploy <dist-dir>",
		Short: "Upload built assets to S3",
		Long: `Deploy uploads every file under the given directory to an S3
bucket, keyed by its relative path. Credentials and region come from the
standard AWS environment (env vars, shared config, instance role).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if bucket == "" {
				return fmt.Errorf("--bucket is required")
			}

			ctx := cmd.Context()
			cfg, err := awsconfig.LoadDefaultConfig(ctx)
			if err != nil {
				return fmt.Errorf("load aws config: %w", err)
			}

			d := assets.NewDeployer(s3.NewFromConfig(cfg), bucket, prefix, nil)
			d.Prune = prune

			info("syncing %s to s3://%s/%s", args[0], bucket, prefix)
			result, err := d.Sync(ctx, args[0])
			if err != nil {
				return err
			}

			success("uploaded %d files (%d bytes) in %s", result.Uploaded, result.Bytes, result.Took)
			if prune {
				info("pruned %d stale objects", result.Pruned)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&bucket, "bucket", "b", "", "target S3 bucket (required)")
	cmd.Flags().StringVar(&prefix, "prefix", "static/", "key prefix for uploaded objects")
	cmd.Flags().BoolVar(&prune, "prune", false, "delete remote objects missing locally")

	return cmd
}
