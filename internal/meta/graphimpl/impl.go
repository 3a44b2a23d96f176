package graphimpl

import (
	"net/http"
	"time"

	"github.com/orgball2608/meta-graph-sync/internal/meta"
	"github.com/orgball2608/meta-graph-sync/internal/ratelimit"
	"github.com/orgball2608/meta-graph-sync/pkg/config"
	"github.com/orgball2608/meta-graph-sync/pkg/logger"
	"github.com/orgball2608/meta-graph-sync/pkg/retry"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config  *config.Config
	Logger  logger.Logger
	Limiter ratelimit.Limiter
}

// GraphImpl talks to the Meta Graph API over HTTP. Every request passes
// the shared rate limiter; reads additionally retry with backoff.
type GraphImpl struct {
	httpClient *http.Client
	baseURL    string
	token      string
	accountID  string
	limiter    ratelimit.Limiter
	retryCfg   retry.Config
	Logger     logger.Logger
}

func New(opts Opts) *GraphImpl {
	return &GraphImpl{
		httpClient: &http.Client{Timeout: 60 * time.Second},
		baseURL:    opts.Config.Meta.BaseURL,
		token:      opts.Config.Meta.AccessToken,
		accountID:  opts.Config.Meta.InstagramAccountID,
		limiter:    opts.Limiter,
		retryCfg:   retry.DefaultConfig(),
		Logger:     opts.Logger.WithComponent("GraphClient"),
	}
}

var _ meta.Client = (*GraphImpl)(nil)
