package usecase

import (
	"errors"
	"strconv"

	"github.com/riskibarqy/buzzerbeater-analyzer/internal/domain/buzzerbeater"
	"github.com/valyala/bytebufferpool"
)

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// summarizeHits renders hits as "Q4@2880:Lakers:shot 98-97; ..." for log lines.
func summarizeHits(hits []buzzerbeater.Hit) string {
	if len(hits) == 0 {
		return ""
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	for i, hit := range hits {
		if i > 0 {
			_, _ = buf.WriteString("; ")
		}
		_, _ = buf.WriteString(hit.Period)
		_ = buf.WriteByte('@')
		_, _ = buf.WriteString(strconv.Itoa(hit.GameClock))
		_ = buf.WriteByte(':')
		_, _ = buf.WriteString(hit.Team)
		_ = buf.WriteByte(':')
		_, _ = buf.WriteString(string(hit.LinkedKind))
		if hit.Score != nil {
			_ = buf.WriteByte(' ')
			_, _ = buf.WriteString(strconv.Itoa(hit.Score.After.Home))
			_ = buf.WriteByte('-')
			_, _ = buf.WriteString(strconv.Itoa(hit.Score.After.Away))
		}
	}
	return buf.String()
}
