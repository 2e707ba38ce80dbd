// Package service implements the operations behind the CLI: roster and
// group maintenance, attendance rounds and the settings singleton.
//
// Services own read-modify-write sequencing over the whole-collection
// store. A per-service mutex serializes sequences within one process; the
// on-device store itself assumes a single writer.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/halmaawali/rollbook/internal/models"
	"github.com/halmaawali/rollbook/internal/storage"
)

// RosterService maintains members and groups.
type RosterService struct {
	mu    sync.Mutex
	store storage.Store
}

// NewRosterService creates a RosterService with the given storage backend.
func NewRosterService(store storage.Store) *RosterService {
	return &RosterService{store: store}
}

// AddMember appends a new member to the roster. groupID may be empty for
// an unassigned member; a non-empty groupID must reference an existing
// group.
func (s *RosterService) AddMember(ctx context.Context, name, groupID string) (models.Member, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Member{}, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if groupID != "" && !s.groupExists(ctx, groupID) {
		return models.Member{}, fmt.Errorf("%w: %s", ErrGroupNotFound, groupID)
	}

	member := models.Member{
		ID:       uuid.New().String(),
		Name:     name,
		JoinDate: time.Now().UTC(),
		GroupID:  groupID,
	}

	members := append(s.store.GetMembers(ctx), member)
	if err := s.store.SaveMembers(ctx, members); err != nil {
		return models.Member{}, fmt.Errorf("failed to save roster: %w", err)
	}

	slog.Info("member added", "member_id", member.ID, "group_id", groupID)
	return member, nil
}

// DeleteMember removes a member by id. Historical session records that
// reference the member are left in place.
func (s *RosterService) DeleteMember(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	members := s.store.GetMembers(ctx)
	kept := members[:0]
	for _, member := range members {
		if member.ID != id {
			kept = append(kept, member)
		}
	}
	if len(kept) == len(members) {
		return fmt.Errorf("%w: %s", ErrMemberNotFound, id)
	}
	if err := s.store.SaveMembers(ctx, kept); err != nil {
		return fmt.Errorf("failed to save roster: %w", err)
	}

	slog.Info("member deleted", "member_id", id)
	return nil
}

// ImportMembers splits raw text into lines and creates one unassigned
// member per non-blank line. It returns the number imported.
func (s *RosterService) ImportMembers(ctx context.Context, text string) (int, error) {
	var names []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line != "" {
			names = append(names, line)
		}
	}
	if len(names) == 0 {
		return 0, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	members := s.store.GetMembers(ctx)
	for _, name := range names {
		members = append(members, models.Member{
			ID:       uuid.New().String(),
			Name:     name,
			JoinDate: now,
		})
	}
	if err := s.store.SaveMembers(ctx, members); err != nil {
		return 0, fmt.Errorf("failed to save roster: %w", err)
	}

	slog.Info("members imported", "count", len(names))
	return len(names), nil
}

// AddGroup creates a new empty group.
func (s *RosterService) AddGroup(ctx context.Context, name string) (models.Group, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Group{}, ErrEmptyName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	group := models.Group{
		ID:   uuid.New().String(),
		Name: name,
	}
	groups := append(s.store.GetGroups(ctx), group)
	if err := s.store.SaveGroups(ctx, groups); err != nil {
		return models.Group{}, fmt.Errorf("failed to save groups: %w", err)
	}

	slog.Info("group added", "group_id", group.ID)
	return group, nil
}

// DeleteGroup removes a group and unlinks every member that referenced
// it. Members are never deleted by this path. The two writes are not
// transactional; if the second fails, the dangling references it leaves
// behind are tolerated by all readers.
func (s *RosterService) DeleteGroup(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	groups := s.store.GetGroups(ctx)
	kept := groups[:0]
	for _, group := range groups {
		if group.ID != id {
			kept = append(kept, group)
		}
	}
	if len(kept) == len(groups) {
		return fmt.Errorf("%w: %s", ErrGroupNotFound, id)
	}
	if err := s.store.SaveGroups(ctx, kept); err != nil {
		return fmt.Errorf("failed to save groups: %w", err)
	}

	members := s.store.GetMembers(ctx)
	unlinked := 0
	for i := range members {
		if members[i].GroupID == id {
			members[i].GroupID = ""
			unlinked++
		}
	}
	if unlinked > 0 {
		if err := s.store.SaveMembers(ctx, members); err != nil {
			return fmt.Errorf("group removed but failed to unlink members: %w", err)
		}
	}

	slog.Info("group deleted", "group_id", id, "members_unlinked", unlinked)
	return nil
}

// RosterBlock is one section of the grouped roster view. Group is nil for
// the trailing block of unassigned members.
type RosterBlock struct {
	Group   *models.Group
	Members []models.Member
}

// Roster returns the grouped roster: one block per group in stored order,
// empty groups included, then the unassigned members. Members whose group
// no longer exists appear as unassigned.
func (s *RosterService) Roster(ctx context.Context) []RosterBlock {
	groups := s.store.GetGroups(ctx)
	members := s.store.GetMembers(ctx)

	known := make(map[string]bool, len(groups))
	for _, group := range groups {
		known[group.ID] = true
	}

	byGroup := make(map[string][]models.Member)
	var unassigned []models.Member
	for _, member := range members {
		if member.GroupID != "" && known[member.GroupID] {
			byGroup[member.GroupID] = append(byGroup[member.GroupID], member)
		} else {
			unassigned = append(unassigned, member)
		}
	}

	blocks := make([]RosterBlock, 0, len(groups)+1)
	for i := range groups {
		blocks = append(blocks, RosterBlock{
			Group:   &groups[i],
			Members: byGroup[groups[i].ID],
		})
	}
	blocks = append(blocks, RosterBlock{Members: unassigned})
	return blocks
}

func (s *RosterService) groupExists(ctx context.Context, id string) bool {
	for _, group := range s.store.GetGroups(ctx) {
		if group.ID == id {
			return true
		}
	}
	return false
}
