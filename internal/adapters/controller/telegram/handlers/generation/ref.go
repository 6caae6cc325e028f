package generation

import (
	"fmt"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v3"
)

// messageRef is what the bot puts into the message_id query parameter: the
// chat and the message id of the summary the configurator was opened from.
type messageRef struct {
	ChatID    int64
	MessageID int
}

func newMessageRef(msg *tele.Message) messageRef {
	return messageRef{ChatID: msg.Chat.ID, MessageID: msg.ID}
}

func (r messageRef) String() string {
	return fmt.Sprintf("%d.%d", r.ChatID, r.MessageID)
}

// parseMessageRef reads a message_id value written by messageRef.String.
// Anything else, including bare message ids, is rejected.
func parseMessageRef(raw string) (messageRef, bool) {
	chat, message, found := strings.Cut(raw, ".")
	if !found {
		return messageRef{}, false
	}
	chatID, err := strconv.ParseInt(chat, 10, 64)
	if err != nil {
		return messageRef{}, false
	}
	messageID, err := strconv.Atoi(message)
	if err != nil || messageID <= 0 {
		return messageRef{}, false
	}
	return messageRef{ChatID: chatID, MessageID: messageID}, true
}

// Stored lets the reference be passed to Bot.Delete and Bot.Edit.
func (r messageRef) Stored() *tele.StoredMessage {
	return &tele.StoredMessage{
		MessageID: strconv.Itoa(r.MessageID),
		ChatID:    r.ChatID,
	}
}
