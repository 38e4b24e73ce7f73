package deps

import (
	"time"

	"github.com/thisisamank/thisisamank.in/internal/config"
	"github.com/thisisamank/thisisamank.in/internal/index"
	"github.com/thisisamank/thisisamank.in/internal/logger"
)

type Deps struct {
	Logger        logger.Logger
	StartTime     time.Time
	Version       string
	Commit        string
	Site          config.Site    // site identity, BaseURL used for absolute links
	Current       *index.Current // active content index, nil until the first load cycle
	PreviewDrafts bool           // allow ?drafts=true on listings
	ReloadTrigger chan struct{}  // buffered(1) channel read by the content reloader
}
