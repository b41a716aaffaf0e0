package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/atlasdesk/triage-assistant/internal/core/domain"
	"github.com/atlasdesk/triage-assistant/internal/core/ports"
)

// UploadTicketsUseCase validates an uploaded ticket set, archives the
// raw payload, and bulk-upserts the tickets into the store.
type UploadTicketsUseCase struct {
	repo    ports.TicketRepository
	storage ports.ObjectStorage
}

func NewUploadTicketsUseCase(repo ports.TicketRepository, storage ports.ObjectStorage) *UploadTicketsUseCase {
	return &UploadTicketsUseCase{repo: repo, storage: storage}
}

func (uc *UploadTicketsUseCase) Upload(ctx context.Context, payload []byte) (int, error) {
	var tickets []domain.Ticket
	if err := json.Unmarshal(payload, &tickets); err != nil {
		return 0, domain.WrapError(domain.ErrInvalidTicketData, "parse ticket upload", err)
	}
	if len(tickets) == 0 {
		return 0, domain.WrapError(domain.ErrInvalidTicketData, "parse ticket upload", errors.New("empty ticket set"))
	}
	for i, ticket := range tickets {
		if strings.TrimSpace(ticket.ID) == "" {
			return 0, domain.WrapError(
				domain.ErrInvalidTicketData,
				"parse ticket upload",
				fmt.Errorf("ticket at index %d has no id", i),
			)
		}
	}

	key := fmt.Sprintf("uploads/%s_%s.json", time.Now().UTC().Format("20060102T150405"), uuid.NewString())
	if err := uc.storage.Save(ctx, key, bytes.NewReader(payload)); err != nil {
		return 0, fmt.Errorf("archive upload: %w", err)
	}

	if err := uc.repo.UpsertBatch(ctx, tickets); err != nil {
		return 0, fmt.Errorf("upsert tickets: %w", err)
	}
	return len(tickets), nil
}
