package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aliskhannn/language-teacher-bot/internal/infra/postgres"
	"github.com/aliskhannn/language-teacher-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/language-teacher-bot/internal/service"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load words and practice sentences from a catalog file",
	Long: "Load words and practice sentences from a JSON catalog file into the database.\n" +
		"Rows are appended, so run it once against an empty catalog.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		path, _ := cmd.Flags().GetString("file")
		if path == "" {
			path = cfg.Seed.CatalogPath
		}

		words, sentences, err := service.LoadCatalogFile(path)
		if err != nil {
			return err
		}

		ctx := cmd.Context()
		pool, err := openPool(ctx, cfg.DB)
		if err != nil {
			return err
		}
		defer pool.Close()

		if err := migrateUp(ctx, pool, log); err != nil {
			return err
		}

		importer := service.NewCatalogImporter(
			postgres.NewTransactor(pool),
			func(db postgres.DBTX) service.CatalogWriter { return repository.NewCatalogRepository(db) },
		)

		nWords, nSentences, err := importer.Import(ctx, words, sentences)
		if err != nil {
			return err
		}

		log.Info("catalog imported",
			zap.String("file", path),
			zap.Int64("words", nWords),
			zap.Int64("sentences", nSentences),
		)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringP("file", "f", "", "catalog file (defaults to seed.catalog_path)")
}
