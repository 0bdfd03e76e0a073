package views

import "html/template"

// MessageViewModel holds the pre-rendered pieces of one message card. Every
// field is trusted markup and is written out without escaping.
type MessageViewModel struct {
	AuthorPicture    template.HTML
	AuthorNameLink   template.HTML
	MessageTimestamp template.HTML
	MessageBody      template.HTML
	MessageActions   template.HTML
}

// CardRequest is the JSON body accepted by the card preview endpoint.
type CardRequest struct {
	Variant          string `json:"variant,omitempty"`
	AuthorPicture    string `json:"author_picture"`
	AuthorNameLink   string `json:"author_name_link"`
	MessageTimestamp string `json:"message_timestamp"`
	MessageBody      string `json:"message_body"`
	MessageActions   string `json:"message_actions"`
}

// AssetList is returned by the asset listing endpoint.
type AssetList struct {
	Stylesheets []string `json:"stylesheets"`
}
