package igdomain

import "encoding/json"

type Profile struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	AccountType string `json:"account_type"`
	MediaCount  int64  `json:"media_count"`
}

type Media struct {
	ID           string          `json:"id"`
	Caption      string          `json:"caption"`
	MediaType    string          `json:"media_type"`
	MediaURL     string          `json:"media_url"`
	Permalink    string          `json:"permalink"`
	ThumbnailURL string          `json:"thumbnail_url"`
	Timestamp    string          `json:"timestamp"`
	Username     string          `json:"username"`
	Children     json.RawMessage `json:"children,omitempty"`
}

type Cursors struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

type Paging struct {
	Cursors *Cursors `json:"cursors,omitempty"`
	Next    string   `json:"next,omitempty"`
}

// MediaPage é uma página de mídias; Paging.Next aponta para a próxima
type MediaPage struct {
	Data   []Media `json:"data"`
	Paging *Paging `json:"paging,omitempty"`
}

type HashtagSearchResponse struct {
	Data []struct {
		ID string `json:"id"`
	} `json:"data"`
}

// TokenResponse é a resposta de refresh_access_token
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}
