package config

// Backend stores small named documents, such as the settings file.
type Backend interface {
	Get(filename string) (string, error)
	Set(filename, value string) error
}
