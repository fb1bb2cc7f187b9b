package editor

import (
	"context"
	"errors"

	"resumeapi/internal/client"
	"resumeapi/internal/model"
)

// remoteSection is the part of client.Section that Sync uses.
type remoteSection[P any] interface {
	Add(ctx context.Context, item P) (P, error)
	UpdateBatch(ctx context.Context, items []P) error
	Delete(ctx context.Context, id string) error
}

// Sync pushes the store to the API: pending deletions first, then a batch
// update of stored entries, then one add per new entry, reconciling each
// returned backend id. It stops at the first failure and leaves local state
// as is, with an error notification.
func Sync(ctx context.Context, s *Store, c *client.Client) error {
	if err := s.Validate(); err != nil {
		s.Notify(LevelError, "Please fix the highlighted fields before saving.")
		return err
	}
	snap := s.Resume()

	if snap.PersonalInfo != nil {
		if _, err := c.SavePersonalInfo(ctx, *snap.PersonalInfo); err != nil {
			return failed(s, "personal info", err)
		}
	}

	steps := []func() error{
		func() error {
			return syncSection[model.WorkExperience](ctx, s, SectionExperiences, c.Experiences, snap.Experiences, experienceKeys)
		},
		func() error {
			return syncSection[model.Education](ctx, s, SectionEducation, c.Education, snap.Education, educationKeys)
		},
		func() error { return syncSection[model.Skill](ctx, s, SectionSkills, c.Skills, snap.Skills, skillKeys) },
		func() error {
			return syncSection[model.Certification](ctx, s, SectionCertifications, c.Certifications, snap.Certifications, certificationKeys)
		},
		func() error {
			return syncSection[model.SocialLink](ctx, s, SectionSocialLinks, c.SocialLinks, snap.SocialLinks, socialLinkKeys)
		},
		func() error {
			return syncSection[model.CustomSection](ctx, s, SectionCustomSections, c.CustomSections, snap.CustomSections, customSectionKeys)
		},
	}
	for _, step := range steps {
		if err := step(); err != nil {
			return err
		}
	}

	s.MarkClean()
	s.Notify(LevelInfo, "Resume saved.")
	return nil
}

func syncSection[P any](ctx context.Context, s *Store, section string, remote remoteSection[P], items []P, k keys[P]) error {
	for _, id := range s.PendingDeletes(section) {
		err := remote.Delete(ctx, id)
		var re *client.RemoteError
		if err != nil && !(errors.As(err, &re) && re.Code == "NOT_FOUND") {
			return failed(s, section, err)
		}
		s.clearDeleted(section, id)
	}

	var stored, fresh []P
	for _, item := range items {
		if id, _ := k(&item); *id != "" {
			stored = append(stored, item)
		} else {
			fresh = append(fresh, item)
		}
	}

	if len(stored) > 0 {
		if err := remote.UpdateBatch(ctx, stored); err != nil {
			return failed(s, section, err)
		}
	}

	// The wire records carry no client id, so each response is matched to
	// the request that produced it.
	for _, item := range fresh {
		saved, err := remote.Add(ctx, item)
		if err != nil {
			return failed(s, section, err)
		}
		_, cid := k(&item)
		id, _ := k(&saved)
		if err := s.Reconcile(*cid, *id); err != nil {
			// The entry was removed locally while the add was in flight.
			s.mu.Lock()
			s.deleted[section] = append(s.deleted[section], *id)
			s.mu.Unlock()
		}
	}
	return nil
}

func failed(s *Store, what string, err error) error {
	s.Notify(LevelError, "Failed to save "+what+": "+Message(err))
	return err
}

// Message is the user-facing text for an error from a remote call.
func Message(err error) string {
	var re *client.RemoteError
	switch {
	case errors.As(err, &re):
		return re.Message
	case errors.Is(err, client.ErrRemote):
		return "could not reach the server, please try again"
	}
	return err.Error()
}
