package igdomain

import "encoding/json"

type InsightValue struct {
	Value   json.RawMessage `json:"value"`
	EndTime string          `json:"end_time,omitempty"`
}

type InsightTotalValue struct {
	Value json.RawMessage `json:"value"`
}

type Insight struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	Period      string             `json:"period"`
	Title       string             `json:"title"`
	Description string             `json:"description"`
	Values      []InsightValue     `json:"values"`
	TotalValue  *InsightTotalValue `json:"total_value,omitempty"`
}

// FirstValue retorna o primeiro valor da métrica, aceitando os formatos
// values[0].value e total_value.value
func (i Insight) FirstValue() json.RawMessage {
	if len(i.Values) > 0 && len(i.Values[0].Value) > 0 {
		return i.Values[0].Value
	}
	if i.TotalValue != nil && len(i.TotalValue.Value) > 0 {
		return i.TotalValue.Value
	}
	return nil
}

type InsightsResponse struct {
	Data []Insight `json:"data"`
}
