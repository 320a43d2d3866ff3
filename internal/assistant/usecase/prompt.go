package usecase

import (
	"encoding/json"
	"fmt"

	"nexstock/internal/assistant"
	"nexstock/internal/catalog"
	"nexstock/internal/model"
	"nexstock/pkg/llmprovider"
)

const resolvePromptTemplate = `Context: Current Inventory Data: %s
User Query: %q

Task:
1. Answer the user's question based on the inventory data.
2. If the user is asking to find/show/filter specific items (e.g. "show me low stock items", "find electronics"),
   provide a JSON object in the response with the key "filterCriteria" matching the product fields.

Output Format: JSON
{
  "answer": "Human readable answer here...",
  "filterCriteria": { "category": "Electronics" }
}
"filterCriteria" is optional and only present when filtering is implied.`

const forecastPromptTemplate = `Product: %s
Historical Context: Sales have been steady with a 5%% increase month-over-month.
Task: Generate a short, realistic demand forecast for the next month for this product. Mention specific projected units.`

// productContext is the projection of an item the model sees.
type productContext struct {
	Name     string            `json:"name"`
	Category string            `json:"category"`
	Stock    int               `json:"stock"`
	Price    float64           `json:"price"`
	Status   model.StockStatus `json:"status"`
}

func buildResolveRequest(query string, items []catalog.Item) (*llmprovider.Request, error) {
	projection := make([]productContext, len(items))
	for i, item := range items {
		projection[i] = productContext{
			Name:     item.Name,
			Category: item.Category,
			Stock:    item.Stock,
			Price:    item.Price,
			Status:   model.StockStatusOf(item.Stock, item.MinStock),
		}
	}
	data, err := json.Marshal(projection)
	if err != nil {
		return nil, err
	}

	return &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: assistant.SystemInstruction}},
		},
		Messages:         llmprovider.UserText(fmt.Sprintf(resolvePromptTemplate, data, query)),
		ResponseMIMEType: "application/json",
		ResponseSchema:   resolveSchema(),
	}, nil
}

func resolveSchema() *llmprovider.Schema {
	return &llmprovider.Schema{
		Type: llmprovider.TypeObject,
		Properties: map[string]*llmprovider.Schema{
			"answer": {Type: llmprovider.TypeString},
			"filterCriteria": {
				Type:     llmprovider.TypeObject,
				Nullable: true,
				Properties: map[string]*llmprovider.Schema{
					"category":    {Type: llmprovider.TypeString},
					"name":        {Type: llmprovider.TypeString},
					"stockStatus": {Type: llmprovider.TypeString, Description: "Use 'low' for low stock items"},
				},
			},
		},
		Required: []string{"answer"},
	}
}

func buildForecastRequest(productName string) *llmprovider.Request {
	return &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{
			Role:  "system",
			Parts: []llmprovider.Part{{Text: assistant.SystemInstruction}},
		},
		Messages: llmprovider.UserText(fmt.Sprintf(forecastPromptTemplate, productName)),
	}
}
