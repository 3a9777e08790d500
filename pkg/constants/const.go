package constants

const (
	APIPrefix = "v1"

	// Builtin accounts seeded at first migration.
	AdminUserName = "admin"
	GuestUserName = "guest"

	// Default session cookie name, overridable in config.
	SessionCookieName = "atelier_session"

	// Public path prefix under which managed assets are served. Asset
	// reference fields starting with this prefix point into the bucket,
	// everything else is external.
	AssetPathPrefix = "/assets/"

	// Bucket folders for managed assets.
	AssetFolderCovers       = "covers"
	AssetFolderArtists      = "artists"
	AssetFolderInspirations = "inspirations"
	AssetFolderUploads      = "uploads"
)
