package controllers

import (
	"github.com/markboenigk/regintel/regintel/rag"
)

type CollectionDescriptor struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type CollectionsController struct{}

func NewCollectionsController() *CollectionsController {
	return &CollectionsController{}
}

// List enumerates the known collections. Static: the two document types the
// vector database is populated with.
func (c *CollectionsController) List() map[string][]CollectionDescriptor {
	return map[string][]CollectionDescriptor{
		"collections": {
			{
				ID:          rag.CollectionRSSFeeds,
				Name:        "Regulatory News",
				Description: "RSS feeds from regulatory sources",
			},
			{
				ID:          rag.CollectionFDAWarningLetters,
				Name:        "FDA Warning Letters",
				Description: "FDA compliance documents",
			},
		},
	}
}
