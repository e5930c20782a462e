package schemas

type ReadFileParams struct {
	Path string `json:"path" jsonschema_description:"Path of the file to read, relative to the project root"`
}

type WriteFileParams struct {
	Path    string `json:"path" jsonschema_description:"Path of the file to write; created if missing"`
	Content string `json:"content" jsonschema_description:"Full content to write"`
}

type ListFilesParams struct {
	Path      string `json:"path,omitempty" jsonschema_description:"Directory to list (default: project root)"`
	Recursive bool   `json:"recursive,omitempty" jsonschema_description:"List subdirectories recursively"`
}

type DeleteFileParams struct {
	Path string `json:"path" jsonschema_description:"Path of the file to delete"`
}

type SearchFilesParams struct {
	Path        string `json:"path,omitempty" jsonschema_description:"Directory to search (default: project root)"`
	Regex       string `json:"regex" jsonschema_description:"Regular expression matched against file contents"`
	FilePattern string `json:"filePattern,omitempty" jsonschema_description:"Glob restricting which files are searched, e.g. *.go"`
}
