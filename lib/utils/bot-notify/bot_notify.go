package botnotify

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"chef-karigar-backend/config"
)

// SendAlert pushes an alert to the agency telegram bot. No-op when the
// bot address is not configured.
func SendAlert(code, title, message string, logger *logrus.Entry) {
	if config.Conf.NotifyBot.Addr == "" {
		return
	}
	payload := fmt.Sprintf(
		`{"code":%q,"title":%q,"message":%q}`,
		code, title, message)
	resp, err := http.Post(config.Conf.NotifyBot.Addr, "application/json", strings.NewReader(payload))
	if err != nil {
		logger.WithError(err).Errorf("error sending alert to telegram bot, resp %+v", resp)
	}
}
