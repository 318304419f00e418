package models

const (
	// ContentTypeFile is the type of a file entry.
	ContentTypeFile = "file"
	// ContentTypeDir is the type of a directory entry.
	ContentTypeDir = "dir"
)

// Links holds the alternate representations of a contents entry.
type Links struct {
	Self *string `json:"self,omitempty" yaml:"self,omitempty"`
	Git  *string `json:"git,omitempty" yaml:"git,omitempty"`
	HTML *string `json:"html,omitempty" yaml:"html,omitempty"`
}

// DirectoryContent is one entry of a repository directory listing.
//
// GitHub API docs: https://docs.github.com/en/rest/repos/contents
type DirectoryContent struct {
	Name *string `json:"name,omitempty" yaml:"name,omitempty"`
	Path *string `json:"path,omitempty" yaml:"path,omitempty"`
	SHA  *string `json:"sha,omitempty" yaml:"sha,omitempty"`
	// Size is zero for directories.
	Size        int     `json:"size" yaml:"size"`
	URL         *string `json:"url,omitempty" yaml:"url,omitempty"`
	HTMLURL     *string `json:"html_url,omitempty" yaml:"html_url,omitempty"`
	GitURL      *string `json:"git_url,omitempty" yaml:"git_url,omitempty"`
	DownloadURL *string `json:"download_url,omitempty" yaml:"download_url,omitempty"`
	// Type is usually ContentTypeFile or ContentTypeDir. Other values are kept as is.
	Type  *string `json:"type,omitempty" yaml:"type,omitempty"`
	Links *Links  `json:"_links,omitempty" yaml:"_links,omitempty"`
}

// FileContent is a single file returned by the contents endpoint, body included.
type FileContent struct {
	DirectoryContent `yaml:",inline"`

	Content  *string `json:"content,omitempty" yaml:"content,omitempty"`
	Encoding *string `json:"encoding,omitempty" yaml:"encoding,omitempty"`
}

// IsFile reports whether the entry type is "file".
func (d *DirectoryContent) IsFile() bool {
	return d.GetType() == ContentTypeFile
}

// IsDir reports whether the entry type is "dir".
func (d *DirectoryContent) IsDir() bool {
	return d.GetType() == ContentTypeDir
}

// IsFile reports whether the entry type is "file".
func (f *FileContent) IsFile() bool {
	return f.GetType() == ContentTypeFile
}

// IsDir reports whether the entry type is "dir".
func (f *FileContent) IsDir() bool {
	return f.GetType() == ContentTypeDir
}
