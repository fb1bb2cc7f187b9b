package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"resumeapi/internal/editor"
	"resumeapi/internal/model"
)

var syncCmd = &cobra.Command{
	Use:   "sync <file>",
	Short: "Push a local resume file to the server and write back the assigned ids",
	Long: "sync reads a resume JSON file, applies it on top of the stored resume " +
		"(entries missing from the file are deleted), saves every change and " +
		"rewrites the file with the backend ids of new entries.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readInput(cmd.InOrStdin(), args[0])
		if err != nil {
			return err
		}
		var local model.Resume
		if err := json.Unmarshal(raw, &local); err != nil {
			return fmt.Errorf("invalid resume file: %w", err)
		}

		c := newClient()
		remote, err := c.Resume(cmd.Context())
		if err != nil {
			return err
		}

		store := editor.NewStore()
		store.Load(remote)
		if err := apply(store, local); err != nil {
			return err
		}

		syncErr := editor.Sync(cmd.Context(), store, c)
		for _, n := range store.Notifications() {
			fmt.Fprintf(cmd.ErrOrStderr(), "[%s] %s\n", n.Level, n.Message)
		}

		// Ids reconciled before a failure are still worth keeping.
		out, err := json.MarshalIndent(store.Resume(), "", "  ")
		if err != nil {
			return err
		}
		if args[0] != "-" {
			if err := writeOutput(cmd.OutOrStdout(), args[0], append(out, '\n')); err != nil {
				return err
			}
		}
		return syncErr
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}

// apply makes the store match local: personal info is replaced, entries
// with a known id are updated, the rest are added, and stored entries that
// local no longer lists are removed.
func apply(s *editor.Store, local model.Resume) error {
	if local.PersonalInfo != nil {
		s.SetPersonalInfo(*local.PersonalInfo)
	}
	current := s.Resume()

	steps := []error{
		applySection(current.Experiences, local.Experiences, func(e model.WorkExperience) string { return e.ID },
			s.AddExperience, s.UpdateExperience, s.RemoveExperience),
		applySection(current.Education, local.Education, func(e model.Education) string { return e.ID },
			s.AddEducation, s.UpdateEducation, s.RemoveEducation),
		applySection(current.Skills, local.Skills, func(e model.Skill) string { return e.ID },
			s.AddSkill, s.UpdateSkill, s.RemoveSkill),
		applySection(current.Certifications, local.Certifications, func(e model.Certification) string { return e.ID },
			s.AddCertification, s.UpdateCertification, s.RemoveCertification),
		applySection(current.SocialLinks, local.SocialLinks, func(e model.SocialLink) string { return e.ID },
			s.AddSocialLink, s.UpdateSocialLink, s.RemoveSocialLink),
		applySection(current.CustomSections, local.CustomSections, func(e model.CustomSection) string { return e.ID },
			s.AddCustomSection, s.UpdateCustomSection, s.RemoveCustomSection),
	}
	for _, err := range steps {
		if err != nil {
			return err
		}
	}
	return nil
}

func applySection[T any](current, local []T, id func(T) string,
	add func(T) string, update func(string, T) error, remove func(string) error) error {
	stored := map[string]bool{}
	for _, e := range current {
		stored[id(e)] = true
	}

	keep := map[string]bool{}
	for _, e := range local {
		key := id(e)
		if key != "" && stored[key] {
			keep[key] = true
			if err := update(key, e); err != nil {
				return err
			}
			continue
		}
		add(e)
	}

	for key := range stored {
		if !keep[key] {
			if err := remove(key); err != nil {
				return err
			}
		}
	}
	return nil
}
