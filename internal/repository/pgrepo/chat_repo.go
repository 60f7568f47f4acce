package pgrepo

import (
	"context"

	"github.com/fsdevblog/p2p-escrow/internal/domain"
	"github.com/fsdevblog/p2p-escrow/internal/repository/repoargs"
	"github.com/fsdevblog/p2p-escrow/pkg/uow"
)

const chatMessageColumns = "id, created_at, order_id::text, sender_id, text, attachment_url, is_system"

// ChatMessageRepository лог сообщений заказа. Сообщения только добавляются.
type ChatMessageRepository struct {
	conn uow.DBTX
}

func NewChatMessageRepository(conn uow.DBTX) *ChatMessageRepository {
	return &ChatMessageRepository{conn: conn}
}

func (c *ChatMessageRepository) Create(
	ctx context.Context,
	args repoargs.ChatMessageCreate,
) (*domain.ChatMessage, error) {
	row := c.conn.QueryRow(ctx,
		`INSERT INTO chat_messages (order_id, sender_id, text, attachment_url, is_system)
		VALUES ($1::text::uuid, $2, $3, $4, $5)
		RETURNING `+chatMessageColumns,
		args.OrderID, args.SenderID, args.Text, args.AttachmentURL, args.IsSystem,
	)
	msg, err := scanChatMessage(row)
	if err != nil {
		return nil, convertErr(err, "creating chat message for order `%s`", args.OrderID)
	}
	return msg, nil
}

// GetByOrderID возвращает переписку по заказу в порядке добавления.
func (c *ChatMessageRepository) GetByOrderID(ctx context.Context, orderID string) ([]domain.ChatMessage, error) {
	rows, err := c.conn.Query(ctx,
		`SELECT `+chatMessageColumns+` FROM chat_messages
		WHERE order_id = $1::text::uuid
		ORDER BY created_at, id`,
		orderID,
	)
	if err != nil {
		return nil, convertErr(err, "getting chat history of order `%s`", orderID)
	}
	defer rows.Close()

	var messages = make([]domain.ChatMessage, 0)
	for rows.Next() {
		msg, scanErr := scanChatMessage(rows)
		if scanErr != nil {
			return nil, convertErr(scanErr, "scanning chat message of order `%s`", orderID)
		}
		messages = append(messages, *msg)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, convertErr(rowsErr, "getting chat history of order `%s`", orderID)
	}
	return messages, nil
}

func scanChatMessage(row rowScanner) (*domain.ChatMessage, error) {
	var msg domain.ChatMessage
	if err := row.Scan(
		&msg.ID, &msg.CreatedAt, &msg.OrderID, &msg.SenderID, &msg.Text, &msg.AttachmentURL, &msg.IsSystem,
	); err != nil {
		return nil, err //nolint:wrapcheck
	}
	return &msg, nil
}
