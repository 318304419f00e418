package models

import "github.com/isometry/gh-content-models/internal/helpers"

// GetSHA returns the SHA field if it's non-nil, zero value otherwise.
func (b *Blob) GetSHA() string {
	if b == nil {
		return ""
	}
	return helpers.String(b.SHA)
}

// GetNodeID returns the NodeID field if it's non-nil, zero value otherwise.
func (b *Blob) GetNodeID() string {
	if b == nil {
		return ""
	}
	return helpers.String(b.NodeID)
}

// GetSize returns the Size field, or zero for a nil Blob.
func (b *Blob) GetSize() int {
	if b == nil {
		return 0
	}
	return b.Size
}

// GetURL returns the URL field if it's non-nil, zero value otherwise.
func (b *Blob) GetURL() string {
	if b == nil {
		return ""
	}
	return helpers.String(b.URL)
}

// GetContent returns the Content field if it's non-nil, zero value otherwise.
func (b *Blob) GetContent() string {
	if b == nil {
		return ""
	}
	return helpers.String(b.Content)
}

// GetEncoding returns the Encoding field if it's non-nil, zero value otherwise.
func (b *Blob) GetEncoding() string {
	if b == nil {
		return ""
	}
	return helpers.String(b.Encoding)
}

// GetSelf returns the Self field if it's non-nil, zero value otherwise.
func (l *Links) GetSelf() string {
	if l == nil {
		return ""
	}
	return helpers.String(l.Self)
}

// GetGit returns the Git field if it's non-nil, zero value otherwise.
func (l *Links) GetGit() string {
	if l == nil {
		return ""
	}
	return helpers.String(l.Git)
}

// GetHTML returns the HTML field if it's non-nil, zero value otherwise.
func (l *Links) GetHTML() string {
	if l == nil {
		return ""
	}
	return helpers.String(l.HTML)
}

// GetName returns the Name field if it's non-nil, zero value otherwise.
func (d *DirectoryContent) GetName() string {
	if d == nil {
		return ""
	}
	return helpers.String(d.Name)
}

// GetPath returns the Path field if it's non-nil, zero value otherwise.
func (d *DirectoryContent) GetPath() string {
	if d == nil {
		return ""
	}
	return helpers.String(d.Path)
}

// GetSHA returns the SHA field if it's non-nil, zero value otherwise.
func (d *DirectoryContent) GetSHA() string {
	if d == nil {
		return ""
	}
	return helpers.String(d.SHA)
}

// GetSize returns the Size field, or zero for a nil entry.
func (d *DirectoryContent) GetSize() int {
	if d == nil {
		return 0
	}
	return d.Size
}

// GetURL returns the URL field if it's non-nil, zero value otherwise.
func (d *DirectoryContent) GetURL() string {
	if d == nil {
		return ""
	}
	return helpers.String(d.URL)
}

// GetHTMLURL returns the HTMLURL field if it's non-nil, zero value otherwise.
func (d *DirectoryContent) GetHTMLURL() string {
	if d == nil {
		return ""
	}
	return helpers.String(d.HTMLURL)
}

// GetGitURL returns the GitURL field if it's non-nil, zero value otherwise.
func (d *DirectoryContent) GetGitURL() string {
	if d == nil {
		return ""
	}
	return helpers.String(d.GitURL)
}

// GetDownloadURL returns the DownloadURL field if it's non-nil, zero value otherwise.
func (d *DirectoryContent) GetDownloadURL() string {
	if d == nil {
		return ""
	}
	return helpers.String(d.DownloadURL)
}

// GetType returns the Type field if it's non-nil, zero value otherwise.
func (d *DirectoryContent) GetType() string {
	if d == nil {
		return ""
	}
	return helpers.String(d.Type)
}

// GetLinks returns the Links field.
func (d *DirectoryContent) GetLinks() *Links {
	if d == nil {
		return nil
	}
	return d.Links
}

// GetContent returns the Content field if it's non-nil, zero value otherwise.
func (f *FileContent) GetContent() string {
	if f == nil {
		return ""
	}
	return helpers.String(f.Content)
}

// GetEncoding returns the Encoding field if it's non-nil, zero value otherwise.
func (f *FileContent) GetEncoding() string {
	if f == nil {
		return ""
	}
	return helpers.String(f.Encoding)
}

// Promoted DirectoryContent getters dereference a nil *FileContent, so FileContent declares its own.

// GetName returns the Name field if it's non-nil, zero value otherwise.
func (f *FileContent) GetName() string {
	if f == nil {
		return ""
	}
	return f.DirectoryContent.GetName()
}

// GetPath returns the Path field if it's non-nil, zero value otherwise.
func (f *FileContent) GetPath() string {
	if f == nil {
		return ""
	}
	return f.DirectoryContent.GetPath()
}

// GetSHA returns the SHA field if it's non-nil, zero value otherwise.
func (f *FileContent) GetSHA() string {
	if f == nil {
		return ""
	}
	return f.DirectoryContent.GetSHA()
}

// GetSize returns the Size field, or zero for a nil file.
func (f *FileContent) GetSize() int {
	if f == nil {
		return 0
	}
	return f.DirectoryContent.GetSize()
}

// GetURL returns the URL field if it's non-nil, zero value otherwise.
func (f *FileContent) GetURL() string {
	if f == nil {
		return ""
	}
	return f.DirectoryContent.GetURL()
}

// GetHTMLURL returns the HTMLURL field if it's non-nil, zero value otherwise.
func (f *FileContent) GetHTMLURL() string {
	if f == nil {
		return ""
	}
	return f.DirectoryContent.GetHTMLURL()
}

// GetGitURL returns the GitURL field if it's non-nil, zero value otherwise.
func (f *FileContent) GetGitURL() string {
	if f == nil {
		return ""
	}
	return f.DirectoryContent.GetGitURL()
}

// GetDownloadURL returns the DownloadURL field if it's non-nil, zero value otherwise.
func (f *FileContent) GetDownloadURL() string {
	if f == nil {
		return ""
	}
	return f.DirectoryContent.GetDownloadURL()
}

// GetType returns the Type field if it's non-nil, zero value otherwise.
func (f *FileContent) GetType() string {
	if f == nil {
		return ""
	}
	return f.DirectoryContent.GetType()
}

// GetLinks returns the Links field.
func (f *FileContent) GetLinks() *Links {
	if f == nil {
		return nil
	}
	return f.DirectoryContent.GetLinks()
}
