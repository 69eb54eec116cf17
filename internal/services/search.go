package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/HaZeModsII/website-design/internal/models"
)

// Index Elasticsearch par type de document
const (
	IndexMerch = "merch"
	IndexParts = "parts"
)

// SearchIndexer indexe le catalogue dans Elasticsearch et sert la recherche
// plein texte du site. L'indexation est asynchrone et best-effort : une panne
// Elastic ne bloque jamais une écriture catalogue.
type SearchIndexer struct {
	client *elasticsearch.Client
}

func NewSearchIndexer(client *elasticsearch.Client) *SearchIndexer {
	return &SearchIndexer{client: client}
}

// IndexMerch indexe (ou réindexe) un article de la boutique
func (s *SearchIndexer) IndexMerch(m models.MerchItem) {
	s.index(IndexMerch, m.ID, m, m.Name)
}

// IndexPart indexe (ou réindexe) une pièce détachée
func (s *SearchIndexer) IndexPart(p models.Part) {
	s.index(IndexParts, p.ID, p, p.Name)
}

// Deindex retire un document supprimé du catalogue
func (s *SearchIndexer) Deindex(index, id string) {
	if s.client == nil {
		return
	}
	req := esapi.DeleteRequest{Index: index, DocumentID: id}
	res, err := req.Do(context.Background(), s.client)
	if err != nil {
		log.Println("❌ Erreur suppression Elastic:", err)
		return
	}
	defer res.Body.Close()
}

func (s *SearchIndexer) index(indexName, id string, doc interface{}, name string) {
	if s.client == nil {
		log.Println("⚠️ Elastic non initialisé, impossible d'indexer:", name)
		return
	}

	data, _ := json.Marshal(doc)
	req := esapi.IndexRequest{
		Index:      indexName,
		DocumentID: id,
		Body:       bytes.NewReader(data),
		Refresh:    "true",
	}

	res, err := req.Do(context.Background(), s.client)
	if err != nil {
		log.Println("❌ Erreur envoi Elastic:", err)
		return
	}
	defer res.Body.Close()

	if res.IsError() {
		log.Printf("⚠️ Elastic a renvoyé une erreur pour %s: %s", name, res.String())
	} else {
		log.Printf("✅ Document indexé dans Elasticsearch (%s): %s", indexName, name)
	}
}

// Search cherche dans le merch et les pièces par nom, description ou catégorie
func (s *SearchIndexer) Search(query string) ([]map[string]interface{}, error) {
	if s.client == nil {
		return nil, errors.New("client Elasticsearch non initialisé")
	}

	var buf bytes.Buffer
	q := map[string]interface{}{
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  query,
				"fields": []string{"name", "description", "category", "car_model"},
			},
		},
	}
	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, fmt.Errorf("erreur encodage requête: %v", err)
	}

	req := esapi.SearchRequest{
		Index: []string{IndexMerch, IndexParts},
		Body:  &buf,
	}
	res, err := req.Do(context.Background(), s.client)
	if err != nil {
		return nil, fmt.Errorf("erreur requête Elastic: %v", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		var e map[string]interface{}
		json.NewDecoder(res.Body).Decode(&e)
		log.Printf("❌ Elasticsearch erreur: %+v", e)
		return nil, errors.New("index non trouvé ou vide")
	}

	var r map[string]interface{}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("erreur décodage JSON: %v", err)
	}

	hitsData, ok := r["hits"].(map[string]interface{})
	if !ok {
		return nil, errors.New("réponse Elastic invalide (pas de hits)")
	}
	hitsArray, ok := hitsData["hits"].([]interface{})
	if !ok {
		return []map[string]interface{}{}, nil
	}

	results := make([]map[string]interface{}, 0, len(hitsArray))
	for _, h := range hitsArray {
		hit, ok := h.(map[string]interface{})
		if !ok {
			continue
		}
		source, ok := hit["_source"].(map[string]interface{})
		if !ok {
			continue
		}
		if idx, ok := hit["_index"].(string); ok {
			source["_type"] = idx
		}
		results = append(results, source)
	}

	return results, nil
}
