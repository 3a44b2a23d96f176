package fx

import (
	"github.com/orgball2608/meta-graph-sync/internal/repositories/account"
	"github.com/orgball2608/meta-graph-sync/internal/repositories/bulkops"
	"github.com/orgball2608/meta-graph-sync/internal/repositories/category"
	"github.com/orgball2608/meta-graph-sync/internal/repositories/comment"
	"github.com/orgball2608/meta-graph-sync/internal/repositories/insight"
	"github.com/orgball2608/meta-graph-sync/internal/repositories/media"
	"github.com/orgball2608/meta-graph-sync/internal/repositories/page"
	"github.com/orgball2608/meta-graph-sync/internal/repositories/publication"
	"github.com/orgball2608/meta-graph-sync/internal/repositories/story"
	"github.com/orgball2608/meta-graph-sync/internal/repositories/user"
	"go.uber.org/fx"
)

var Module = fx.Options(
	bulkops.Module,
	category.Module,
	user.Module,
	account.Module,
	page.Module,
	media.Module,
	comment.Module,
	story.Module,
	insight.Module,
	publication.Module,
)
