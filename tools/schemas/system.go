package schemas

type ExecuteCommandParams struct {
	Command                    string `json:"command" jsonschema_description:"Shell command to run in the project terminal"`
	ReturnEmptyStringOnSuccess bool   `json:"returnEmptyStringOnSuccess,omitempty" jsonschema_description:"Return no output when the command succeeds"`
}

type GitDiffParams struct {
	Ref string `json:"ref,omitempty" jsonschema_description:"Commit or branch to diff against (default: working tree)"`
}

type GitCommitParams struct {
	Message string `json:"message" jsonschema_description:"Commit message"`
}

type GitLogParams struct {
	Limit int `json:"limit,omitempty" jsonschema:"minimum=1,maximum=100" jsonschema_description:"Maximum number of commits (default 10)"`
}
