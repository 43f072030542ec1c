package opensearch

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/kingrain94/pitchcraft-api/internal/config"
	"github.com/kingrain94/pitchcraft-api/internal/domain"
	"github.com/kingrain94/pitchcraft-api/internal/repository"
	"github.com/kingrain94/pitchcraft-api/internal/utils"
)

// searchFields are the text fields a history search matches against.
var searchFields = []string{
	"prospect_name^3",
	"prospect_company^3",
	"prospect_title^2",
	"pain_point",
	"offer_description",
	"generated_text",
}

type searchRepository struct {
	client *opensearch.Client
	config *config.OpenSearchConfig
}

func NewRepository(client *opensearch.Client, config *config.OpenSearchConfig) repository.SearchRepository {
	return &searchRepository{
		client: client,
		config: config,
	}
}

func (r *searchRepository) Index(ctx context.Context, pitch *domain.Pitch) error {
	if err := r.CreateIndex(ctx); err != nil {
		return fmt.Errorf("failed to ensure index exists: %w", err)
	}

	data, err := json.Marshal(pitch)
	if err != nil {
		return fmt.Errorf("failed to marshal pitch: %w", err)
	}

	req := opensearchapi.IndexRequest{
		Index:      r.config.GetIndexName(),
		DocumentID: strconv.FormatInt(pitch.ID, 10),
		Body:       strings.NewReader(string(data)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to index document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing document: %s", res.String())
	}

	return nil
}

func (r *searchRepository) BulkIndex(ctx context.Context, pitches []domain.Pitch) error {
	if len(pitches) == 0 {
		return nil
	}

	if err := r.CreateIndex(ctx); err != nil {
		return fmt.Errorf("failed to ensure index exists: %w", err)
	}

	body, err := buildBulkBody(r.config.GetIndexName(), pitches)
	if err != nil {
		return err
	}

	req := opensearchapi.BulkRequest{
		Body: strings.NewReader(body),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to execute bulk request: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("bulk request failed: %s", res.String())
	}

	return nil
}

func buildBulkBody(indexName string, pitches []domain.Pitch) (string, error) {
	var bulkBody strings.Builder
	for _, pitch := range pitches {
		action := map[string]any{
			"index": map[string]any{
				"_index": indexName,
				"_id":    strconv.FormatInt(pitch.ID, 10),
			},
		}
		actionLine, err := json.Marshal(action)
		if err != nil {
			return "", fmt.Errorf("failed to marshal action: %w", err)
		}
		bulkBody.Write(actionLine)
		bulkBody.WriteString("\n")

		docLine, err := json.Marshal(pitch)
		if err != nil {
			return "", fmt.Errorf("failed to marshal document: %w", err)
		}
		bulkBody.Write(docLine)
		bulkBody.WriteString("\n")
	}
	return bulkBody.String(), nil
}

func (r *searchRepository) Search(ctx context.Context, filter *domain.PitchFilter) ([]domain.Pitch, error) {
	if filter.OwnerID == "" {
		ownerID, err := utils.GetOwnerIDFromContext(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get owner from context: %w", err)
		}
		filter.OwnerID = ownerID
	}

	queryJSON, err := json.Marshal(buildSearchQuery(filter))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	req := opensearchapi.SearchRequest{
		Index: []string{r.config.GetIndexName()},
		Body:  strings.NewReader(string(queryJSON)),
	}

	res, err := req.Do(ctx, r.client)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		if res.StatusCode == 404 {
			return []domain.Pitch{}, nil
		}
		return nil, fmt.Errorf("search request failed: %s", res.String())
	}

	var searchResult struct {
		Hits struct {
			Hits []struct {
				Source domain.Pitch `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}

	if err := json.NewDecoder(res.Body).Decode(&searchResult); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	pitches := make([]domain.Pitch, 0, len(searchResult.Hits.Hits))
	for _, hit := range searchResult.Hits.Hits {
		pitches = append(pitches, hit.Source)
	}

	return pitches, nil
}

// buildSearchQuery always filters on owner; the text query only affects scoring
// and matching inside that owner's documents.
func buildSearchQuery(filter *domain.PitchFilter) map[string]any {
	filters := []map[string]any{
		{"term": map[string]any{"owner_id": filter.OwnerID}},
	}
	if !filter.StartTime.IsZero() || !filter.EndTime.IsZero() {
		createdAt := map[string]any{}
		if !filter.StartTime.IsZero() {
			createdAt["gte"] = filter.StartTime
		}
		if !filter.EndTime.IsZero() {
			createdAt["lte"] = filter.EndTime
		}
		filters = append(filters, map[string]any{"range": map[string]any{"created_at": createdAt}})
	}
	boolQuery := map[string]any{"filter": filters}

	if q := strings.TrimSpace(filter.Query); q != "" {
		boolQuery["must"] = []map[string]any{
			{
				"multi_match": map[string]any{
					"query":  q,
					"fields": searchFields,
				},
			},
		}
	}

	query := map[string]any{
		"query": map[string]any{
			"bool": boolQuery,
		},
	}

	if filter.Page > 0 && filter.PageSize > 0 {
		query["from"] = (filter.Page - 1) * filter.PageSize
		query["size"] = filter.PageSize
	}

	sort := []map[string]any{}
	if strings.TrimSpace(filter.Query) != "" {
		sort = append(sort, map[string]any{"_score": map[string]any{"order": "desc"}})
	}
	sort = append(sort, map[string]any{"created_at": map[string]any{"order": "desc"}})
	query["sort"] = sort

	return query
}

func (r *searchRepository) getIndexMapping() string {
	return `{
		"mappings": {
			"properties": {
				"id": { "type": "long" },
				"owner_id": { "type": "keyword" },
				"prospect_name": { "type": "text" },
				"prospect_title": { "type": "text" },
				"prospect_company": { "type": "text", "fields": { "raw": { "type": "keyword" } } },
				"pain_point": { "type": "text" },
				"offer_description": { "type": "text" },
				"generated_text": { "type": "text" },
				"is_pro": { "type": "boolean" },
				"billing_reference": { "type": "keyword", "index": false },
				"created_at": { "type": "date" }
			}
		},
		"settings": {
			"index": {
				"number_of_shards": 1,
				"number_of_replicas": 1,
				"refresh_interval": "1s"
			}
		}
	}`
}

func (r *searchRepository) CreateIndex(ctx context.Context) error {
	indexName := r.config.GetIndexName()

	exists := opensearchapi.IndicesExistsRequest{
		Index: []string{indexName},
	}
	res, err := exists.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to check index existence: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode == 200 {
		return nil
	}

	create := opensearchapi.IndicesCreateRequest{
		Index: indexName,
		Body:  strings.NewReader(r.getIndexMapping()),
	}

	res, err = create.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer res.Body.Close()

	// 400 means another worker created it first.
	if res.IsError() && res.StatusCode != 400 {
		return fmt.Errorf("error creating index: %s", res.String())
	}

	return nil
}
