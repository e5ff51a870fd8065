package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/vango-dev/showcase/internal/errors"
	"github.com/vango-dev/showcase/pkg/publish"
)

func publishCmd(opts *rootOptions) *cobra.Command {
	var (
		bucket string
		key    string
		region string
		prefix string
	)

	cmd := &cobra.Command{
		Use:   "publish",
		Short: "Upload the standalone page to S3",
		Long: `Render the standalone page and upload it to an S3 bucket.

Credentials and region are resolved the way the AWS CLI resolves them:
environment variables, shared config profiles (AWS_PROFILE), SSO and
instance roles. --region overrides the resolved region.

Examples:
  showcase publish --bucket=my-site
  showcase publish --bucket=my-site --prefix=demos/ --region=eu-west-1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("bucket") {
				cfg.Publish.Bucket = bucket
			}
			if flags.Changed("key") {
				cfg.Publish.Key = key
			}
			if flags.Changed("region") {
				cfg.Publish.Region = region
			}
			if cfg.Publish.Bucket == "" {
				return errors.New("E300").WithDetail("no bucket configured")
			}

			page, err := renderStatic(cfg)
			if err != nil {
				return errors.New("E201").Wrap(err)
			}

			client, err := publish.NewS3Client(cmd.Context(), cfg.Publish.Region)
			if err != nil {
				return err
			}
			pub, err := publish.NewS3Publisher(
				client,
				cfg.Publish.Bucket,
				publish.WithPrefix(prefix),
				publish.WithLogger(slog.Default()),
			)
			if err != nil {
				return err
			}

			loc, err := pub.Publish(cmd.Context(), cfg.Publish.Key, page)
			if err != nil {
				return err
			}

			success(cmd.OutOrStdout(), "Published %s", loc)
			return nil
		},
	}

	cmd.Flags().StringVar(&bucket, "bucket", "", "Destination bucket (default from config)")
	cmd.Flags().StringVar(&key, "key", "", "Object key (default from config, index.html)")
	cmd.Flags().StringVar(&region, "region", "", "AWS region (default from config or AWS_REGION)")
	cmd.Flags().StringVar(&prefix, "prefix", "", "Key prefix, such as demos/")

	return cmd
}
