// Package localize provides the localize command.
package localize

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/karnadigital/atlas/internal/appcontext"
	"github.com/karnadigital/atlas/pkg/emit"
)

// NewCommand creates the localize command with app dependencies.
func NewCommand(app appcontext.Interface) *cobra.Command {
	var (
		outputDir string
		imagesDir string
		mapFile   string
		fetch     bool
	)

	cmd := &cobra.Command{
		Use:     "localize",
		GroupID: "management",
		Short:   "Point image references at bundled local images",
		Long: `Localize rewrites the imageUrl of every object that has a local image.

Local images are found either by scanning a directory for <id>.<ext> files
(webp, png, jpg) or from an explicit JSON map of id to path. With --fetch the
first reachable gallery image of each object is downloaded into --images-dir
first. Objects without a local image keep their reference.`,
		Example: `  atlas localize --images-dir ./assets/images
  atlas localize --images-dir ./assets/images --fetch
  atlas localize --map images.json --output-dir ./assets`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir := outputDir
			if dir == "" {
				dir = app.OutputDir()
			}

			var (
				paths map[string]string
				err   error
			)
			ctx := app.Context(cmd.Context())
			switch {
			case mapFile != "":
				paths, err = emit.LoadImageMap(mapFile)
			case fetch:
				paths, err = fetchImages(ctx, dir, imagesDir)
			default:
				paths, err = emit.ScanImages(imagesDir)
			}
			if err != nil {
				return err
			}

			changed, err := emit.RewriteObjects(ctx, dir, paths)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d of %d local images applied\n", changed, len(paths))
			return nil
		},
	}

	cmd.Flags().StringVar(&outputDir, "output-dir", "", "directory holding the emitted catalog")
	cmd.Flags().StringVar(&imagesDir, "images-dir", "", "directory of <id>.<ext> image files")
	cmd.Flags().StringVar(&mapFile, "map", "", "JSON file mapping ids to local image paths")
	cmd.Flags().BoolVar(&fetch, "fetch", false, "download gallery images into --images-dir before rewriting")
	cmd.MarkFlagsMutuallyExclusive("images-dir", "map")
	cmd.MarkFlagsMutuallyExclusive("fetch", "map")
	cmd.MarkFlagsOneRequired("images-dir", "map")

	return cmd
}

// fetchImages downloads one image per gallery entry of the catalog in dir.
func fetchImages(ctx context.Context, dir, imagesDir string) (map[string]string, error) {
	gallery, err := emit.LoadGallery(dir)
	if err != nil {
		return nil, err
	}
	return emit.FetchGallery(ctx, emit.NewHTTPFetcher(imagesDir), gallery)
}
