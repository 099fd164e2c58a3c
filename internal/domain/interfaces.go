package domain

// Splitter segments a block of text into ordered fragments.
type Splitter interface {
	Split(text string) []string
}

// CorpusBuilder defines the operations exposed by the application core.
type CorpusBuilder interface {
	DiscoverAndParse(dir string) ([]*Document, error)
	AssembleCorpus(documents []*Document) (*Corpus, error)
	Build(dir string) (*Corpus, error)
}
