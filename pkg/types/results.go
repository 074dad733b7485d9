package types

// ScanResult holds the result of scanning a source directory.
type ScanResult struct {
	SourceDir    string        `json:"source_dir"`
	PreviewItems []PreviewItem `json:"preview_svgs"`
	// TotalMatching counts distinct matching files after symlink aliases collapse
	TotalMatching int `json:"total_svg_count"`
	NonMatching   int `json:"non_svg_count"`
}

// PreviewItem is one of the largest matching files, with its full text.
type PreviewItem struct {
	Path    string `json:"path"`
	Size    uint64 `json:"size"`
	Content string `json:"content"`
}

// ExportResult holds the result of exporting a theme.
type ExportResult struct {
	OutputDir      string `json:"output_dir"`
	MatchingFiles  int    `json:"svgs_processed"`
	OtherFiles     int    `json:"files_copied"`
	SymlinksLinked int    `json:"symlinks_created"`
}

// PaletteResult holds the colors found in a set of preview items.
type PaletteResult struct {
	SourceDir string   `json:"source_dir"`
	Colors    []string `json:"colors"`
}
