package version

var (
	AppName     = "Levelbot"
	AppFullName = "Levelbot — Discord leveling and rank cards"
	Version     = "dev"
)
