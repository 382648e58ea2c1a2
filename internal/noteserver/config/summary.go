package config

// SummaryConfig задает параметры построения сводки.
type SummaryConfig struct {
	MaxSentences int `yaml:"max_sentences" env:"NOTESERVER_SUMMARY_MAX_SENTENCES" env-default:"3"`
}
