package views

import "html/template"

// ToMessageViewModel marks the request fields as safe markup. Callers of the
// preview endpoint are the message-assembly layer, which has already
// sanitized them.
func ToMessageViewModel(req CardRequest) MessageViewModel {
	return MessageViewModel{
		AuthorPicture:    template.HTML(req.AuthorPicture),
		AuthorNameLink:   template.HTML(req.AuthorNameLink),
		MessageTimestamp: template.HTML(req.MessageTimestamp),
		MessageBody:      template.HTML(req.MessageBody),
		MessageActions:   template.HTML(req.MessageActions),
	}
}
