package dto

type SuggestRequest struct {
	Goal string `json:"goal" binding:"max=500"`
}

type SuggestionItem struct {
	Title       string `json:"title" binding:"max=200"`
	Description string `json:"description" binding:"max=2000"`
}

type SuggestResponse struct {
	Source string           `json:"source" example:"fallback"`
	Items  []SuggestionItem `json:"items"`
}

type AcceptSuggestionsRequest struct {
	Items []SuggestionItem `json:"items" binding:"required,min=1,max=4,dive"`
}
