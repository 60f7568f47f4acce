package repoargs

type ChatMessageCreate struct {
	OrderID       string
	SenderID      *int64
	Text          string
	AttachmentURL *string
	IsSystem      bool
}
