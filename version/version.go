package version

// VERSION is the current version of adtp-go.
const VERSION = "0.1.0"

// AppVersion returns the application identifier used to tag emitted
// messages, e.g. in generator headers or logger fields.
func AppVersion() string {
	return "adtp-go/" + VERSION
}
