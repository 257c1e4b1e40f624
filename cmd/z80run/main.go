package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/oisee/z80core/pkg/batch"
	"github.com/oisee/z80core/pkg/report"
	"github.com/oisee/z80core/pkg/z80"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "z80run",
		Short: "Z80 core runner — execute raw memory images against the interpreter",
	}

	var entryPC uint16
	var maxSteps int

	runCmd := &cobra.Command{
		Use:   "run [image]",
		Short: "Load a raw memory image into one core and step it to halt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			image, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			c := z80.NewCPU()
			c.LoadBytes(0, image)
			c.SetPC(entryPC)

			steps := 0
			for steps < maxSteps && !c.Halted {
				c.Step()
				steps++
			}

			fmt.Printf("steps=%d halted=%v\n", steps, c.Halted)
			fmt.Printf("PC=%04X SP=%04X IX=%04X IY=%04X\n", c.PC, c.SP, c.IX, c.IY)
			fmt.Printf("A=%02X F=%02X B=%02X C=%02X D=%02X E=%02X H=%02X L=%02X\n",
				c.A, c.F, c.B, c.C, c.D, c.E, c.H, c.L)
			return nil
		},
	}
	runCmd.Flags().Uint16Var(&entryPC, "entry", 0, "Entry program counter")
	runCmd.Flags().IntVar(&maxSteps, "max-steps", 1_000_000, "Step budget before giving up")

	var numWorkers int
	var outputPath string

	batchCmd := &cobra.Command{
		Use:   "batch [image]...",
		Short: "Run each image through its own core concurrently and print a summary or write a JSON report (--output)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobs := make([]batch.Job, 0, len(args))
			for _, path := range args {
				image, err := os.ReadFile(path)
				if err != nil {
					return err
				}
				jobs = append(jobs, batch.Job{
					Name:     path,
					Image:    image,
					EntryPC:  entryPC,
					MaxSteps: maxSteps,
				})
			}

			wp := batch.NewWorkerPool(numWorkers)
			wp.RunJobs(jobs)

			run, halted := wp.Stats()
			fmt.Printf("ran %d jobs, %d halted on their own\n", run, halted)

			results := wp.Results.Results()
			if outputPath != "" {
				if err := writeJSONReport(outputPath, results); err != nil {
					return err
				}
				fmt.Printf("written to %s\n", outputPath)
				return nil
			}
			for _, r := range results {
				fmt.Printf("%-30s steps=%-6d halted=%-5v PC=%04X A=%02X\n",
					r.Name, r.Steps, r.Halted, r.FinalPC, r.A)
			}
			return nil
		},
	}
	batchCmd.Flags().Uint16Var(&entryPC, "entry", 0, "Entry program counter for every job")
	batchCmd.Flags().IntVar(&maxSteps, "max-steps", 1_000_000, "Per-job step budget")
	batchCmd.Flags().IntVar(&numWorkers, "workers", 0, "Number of workers (0 = NumCPU)")
	batchCmd.Flags().StringVar(&outputPath, "output", "", "Write results as JSON to this path")

	rootCmd.AddCommand(runCmd, batchCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func writeJSONReport(path string, results []report.RunResult) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
