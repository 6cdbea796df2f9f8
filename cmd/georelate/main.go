// Command georelate computes pairwise spatial relations between two
// datasets described in an INI configuration file and writes the
// rendered natural-language result to a file.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/georelate"
	"github.com/spf13/cobra"
)

var (
	configFile       string
	nicknameR        string
	nicknameS        string
	partitionsPerDim int
	workers          int
	outputPath       string
	appendOutput     bool

	runR *georelate.DatasetStatement
	runS *georelate.DatasetStatement
)

// rootCmd mirrors the teacher's PersistentPreRunE-driven config loading,
// adapted here to load and validate the two dataset statements this
// pipeline needs instead of a model-wide configuration struct.
var rootCmd = &cobra.Command{
	Use:   "georelate",
	Short: "Computes spatial relations between two geometric datasets as natural-language text.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadDatasetStatements()
	},
	RunE: run,
}

func loadDatasetStatements() error {
	if nicknameR == "" || nicknameS == "" {
		return fmt.Errorf("georelate: both -R and -S must be set")
	}
	cfg, err := georelate.LoadConfig(configFile)
	if err != nil {
		return err
	}
	runR, err = georelate.LoadDatasetStatement(cfg, nicknameR)
	if err != nil {
		return err
	}
	runS, err = georelate.LoadDatasetStatement(cfg, nicknameS)
	if err != nil {
		return err
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	logrus.WithFields(logrus.Fields{"R": nicknameR, "S": nicknameS}).Info("georelate: starting join")

	selfJoin := runR.Path == runS.Path
	datasetR := georelate.NewDataset(runR.Path, runR.Nickname, runR.Description, runR.WKTColIdx, runR.NameColIdx, runR.OtherColIdx)
	datasetS := georelate.NewDataset(runS.Path, runS.Nickname, runS.Description, runS.WKTColIdx, runS.NameColIdx, runS.OtherColIdx)

	if err := datasetR.Load(); err != nil {
		return err
	}
	if err := datasetS.Load(); err != nil {
		return err
	}

	ds, err := georelate.UnifyAndIndex(datasetR, datasetS, partitionsPerDim)
	if err != nil {
		return err
	}

	cfg := georelate.JoinConfig{
		PartitionsPerDim: partitionsPerDim,
		Workers:          workers,
		DocType:          runR.DocType,
		SelfJoin:         selfJoin,
	}

	result, err := georelate.Join(context.Background(), datasetR, datasetS, ds, cfg)
	if err != nil {
		return err
	}

	if err := writeOutput(result); err != nil {
		return err
	}
	logrus.Info("georelate: join complete")
	return nil
}

func writeOutput(result *georelate.JoinResult) error {
	flags := os.O_WRONLY | os.O_CREATE
	if appendOutput {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}
	f, err := os.OpenFile(outputPath, flags, 0644)
	if err != nil {
		return fmt.Errorf("georelate: failed to open output file %s: %w", outputPath, err)
	}
	defer f.Close()

	if result.DocType == georelate.DocSentences {
		_, err = f.WriteString(result.Sentences)
		return err
	}
	for _, entity := range result.Order {
		if _, err := fmt.Fprintf(f, "%s: information: %s\n", entity, result.Paragraphs[entity]); err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "./datasets.ini", "dataset configuration file location")
	rootCmd.Flags().StringVarP(&nicknameR, "R", "R", "", "dataset R nickname (required)")
	rootCmd.Flags().StringVarP(&nicknameS, "S", "S", "", "dataset S nickname (required)")
	rootCmd.Flags().IntVarP(&partitionsPerDim, "p", "p", 10000, "partitions per dimension")
	rootCmd.Flags().IntVarP(&workers, "t", "t", 1, "worker count")
	rootCmd.Flags().StringVarP(&outputPath, "o", "o", "", "output file path (required)")
	rootCmd.Flags().BoolVarP(&appendOutput, "a", "a", false, "append to existing output file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
