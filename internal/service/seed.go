package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"tarkov-squad-board/internal/domain"
	"tarkov-squad-board/internal/repository"
)

// SeedDefaults 在存储为空时写入缺省小队和三名成员，
// 让面板在没有任何数据时也有可展示的内容。已有小队时为空操作。
func SeedDefaults(ctx context.Context, groupRepo repository.GroupRepository) error {
	groups, err := groupRepo.ListGroups(ctx)
	if err != nil {
		return fmt.Errorf("seed: list groups: %w", err)
	}
	if len(groups) > 0 {
		logrus.Debug("Seed skipped: groups already present")
		return nil
	}

	description := "Domyślna grupa Tarkov"
	group := &domain.Group{
		Name:        "Moja Grupa",
		Description: &description,
		CreatedBy:   "system",
	}
	if err := groupRepo.CreateGroup(ctx, group); err != nil {
		return fmt.Errorf("seed: create default group: %w", err)
	}

	members := []domain.GroupMember{
		{Username: "MattyDev", Level: 42, IsOnline: true},
		{Username: "AkimboKiller", Level: 38, IsOnline: true},
		{Username: "SniperNoob", Level: 29, IsOnline: false},
	}
	for i := range members {
		members[i].GroupID = group.ID
		if err := groupRepo.CreateMember(ctx, &members[i]); err != nil {
			return fmt.Errorf("seed: create default member %q: %w", members[i].Username, err)
		}
	}

	logrus.WithFields(logrus.Fields{
		"group_id": group.ID,
		"members":  len(members),
	}).Info("Seeded default group and members")
	return nil
}
