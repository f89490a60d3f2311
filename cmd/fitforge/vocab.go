package main

import (
	"fmt"

	"github.com/Aanishnithin07/FitForge/internal/vocabulary"
	"github.com/spf13/cobra"
)

func newVocabCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "Inspect and validate skill and synonym vocabularies",
	}
	cmd.AddCommand(newVocabValidateCmd(), newVocabShowCmd(g))
	return cmd
}

func newVocabValidateCmd() *cobra.Command {
	var skillsPath, synonymsPath string
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate vocabulary files against their JSON Schemas",
		Example: `  fitforge vocab validate --skills skills.json
  fitforge vocab validate --skills skills.json --synonyms synonyms.json`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if skillsPath == "" && synonymsPath == "" {
				return fmt.Errorf("at least one of --skills or --synonyms is required")
			}
			out := cmd.OutOrStdout()
			if skillsPath != "" {
				skills, err := vocabulary.LoadSkills(skillsPath)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "✓ %s is valid (version %s, %d skills)\n", skillsPath, skills.Version, len(skills.Skills))
			}
			if synonymsPath != "" {
				synonyms, err := vocabulary.LoadSynonyms(synonymsPath)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "✓ %s is valid (version %s, %d concepts)\n", synonymsPath, synonyms.Version, len(synonyms.Concepts))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&skillsPath, "skills", "", "Path to a skills JSON file")
	cmd.Flags().StringVar(&synonymsPath, "synonyms", "", "Path to a synonyms JSON file")
	return cmd
}

func newVocabShowCmd(g *globalFlags) *cobra.Command {
	var list bool
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the vocabulary in effect for the current config",
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := setup(cmd, g)
			if err != nil {
				return err
			}
			defer rt.close(cmd.Context())

			v := vocabulary.Resolve(rt.cfg.Vocabulary.SkillsPath, rt.cfg.Vocabulary.SynonymsPath, rt.log)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Version:  %s\n", v.Version())
			fmt.Fprintf(out, "Skills:   %d\n", len(v.Skills.Skills))
			fmt.Fprintf(out, "Concepts: %d\n", len(v.Synonyms.Concepts))
			if list {
				fmt.Fprintln(out)
				for _, skill := range v.Skills.Skills {
					fmt.Fprintf(out, "  %s\n", skill)
				}
				fmt.Fprintln(out)
				for _, c := range v.Synonyms.Concepts {
					fmt.Fprintf(out, "  %s: %d synonyms\n", c.Key, len(c.Synonyms))
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&list, "list", false, "List every skill and concept")
	return cmd
}
