package domain

// Remote records are the immutable values returned by the Meta Graph
// client facade. Field names follow the Graph API response shapes.

type RemoteCategory struct {
	ID   string
	Name string
}

type RemoteUser struct {
	ID    string
	Name  string
	Email string
}

type RemoteAccount struct {
	ID                string
	Username          string
	FollowsCount      int
	FollowersCount    int
	MediaCount        int
	ProfilePictureURL string
	Website           string
	Biography         string
}

type RemotePage struct {
	ID           string
	Name         string
	Category     string
	CategoryList []RemoteCategory
	AccessToken  string
	Tasks        []string

	// InstagramBusinessAccount is nil for pages with no linked account.
	InstagramBusinessAccount *RemoteAccount
}

type RemoteMedia struct {
	ID            string
	Username      string
	Caption       string
	MediaType     string
	MediaURL      string
	Timestamp     string
	LikeCount     int
	CommentsCount int
}

type RemoteComment struct {
	ID        string
	Text      string
	Username  string
	LikeCount int
	Timestamp string
}

type RemoteStory struct {
	ID        string
	Username  string
	MediaType string
	MediaURL  string
	Timestamp string
}

// InsightValue is one point of an insight metric series.
type InsightValue struct {
	Value   int64  `json:"value"`
	EndTime string `json:"end_time,omitempty"`
}

type RemoteInsight struct {
	ID          string
	Name        string
	Period      string
	Values      []InsightValue
	Title       string
	Description string
}
