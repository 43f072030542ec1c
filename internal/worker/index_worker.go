package worker

import (
	"context"

	"github.com/kingrain94/pitchcraft-api/internal/repository"
	"github.com/kingrain94/pitchcraft-api/internal/service/queue"
)

// IndexHandler copies saved pitches into the search index.
type IndexHandler struct {
	search repository.SearchRepository
}

func NewIndexHandler(search repository.SearchRepository) *IndexHandler {
	return &IndexHandler{search: search}
}

func (h *IndexHandler) Name() string { return "index" }

func (h *IndexHandler) Handle(ctx context.Context, msg queue.Message) error {
	if msg.Type != queue.MessageTypeIndex {
		return permanent("unexpected message type %q on index queue", msg.Type)
	}

	switch len(msg.Pitches) {
	case 0:
		return permanent("index message for owner %s carries no pitches", msg.OwnerID)
	case 1:
		return h.search.Index(ctx, &msg.Pitches[0])
	default:
		return h.search.BulkIndex(ctx, msg.Pitches)
	}
}
