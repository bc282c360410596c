package config

// File represents the structure of the YAML configuration file.
// Every field is optional; zero values leave the corresponding default alone.
type File struct {
	// Output overrides the output file path.
	Output string `yaml:"output,omitempty"`

	// Layout overrides the page geometry.
	Layout LayoutFile `yaml:"layout,omitempty"`

	// Metadata overrides the PDF document information.
	Metadata MetadataFile `yaml:"metadata,omitempty"`
}

// LayoutFile is the layout section of the config file.
type LayoutFile struct {
	PageSize    string `yaml:"pageSize,omitempty"`
	Orientation string `yaml:"orientation,omitempty"`
	Unit        string `yaml:"unit,omitempty"`

	// Margin and PageBreakMargin are pointers so that an explicit 0 can be
	// told apart from an absent key.
	Margin          *float64 `yaml:"margin,omitempty"`
	PageBreakMargin *float64 `yaml:"pageBreakMargin,omitempty"`
}

// MetadataFile is the metadata section of the config file.
type MetadataFile struct {
	Author  string `yaml:"author,omitempty"`
	Subject string `yaml:"subject,omitempty"`
}

// Apply copies the values set in the file onto cfg.
func (f *File) Apply(cfg *Config) {
	if f.Output != "" {
		cfg.OutputFile = f.Output
	}

	l := &cfg.Layout
	if f.Layout.PageSize != "" {
		l.PageSize = f.Layout.PageSize
	}
	if f.Layout.Orientation != "" {
		l.Orientation = f.Layout.Orientation
	}
	if f.Layout.Unit != "" {
		l.Unit = f.Layout.Unit
	}
	if f.Layout.Margin != nil {
		l.Margin = *f.Layout.Margin
	}
	if f.Layout.PageBreakMargin != nil {
		l.PageBreakMargin = *f.Layout.PageBreakMargin
	}
	if f.Metadata.Author != "" {
		l.Author = f.Metadata.Author
	}
	if f.Metadata.Subject != "" {
		l.Subject = f.Metadata.Subject
	}
}
