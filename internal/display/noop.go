package display

import (
	"context"

	"github.com/Nixie-Tech-LLC/masjidsite/internal/prayer"
)

// Noop drops every table. Used when no broker is configured.
type Noop struct{}

func (Noop) PublishTable(context.Context, string, *prayer.DailyTable) error { return nil }

func (Noop) Close() {}
