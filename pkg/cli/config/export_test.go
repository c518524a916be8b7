package config

// NewSlackForTest creates a Slack config for testing purposes
func NewSlackForTest(botToken, channelID string) *Slack {
	return &Slack{
		botToken:  botToken,
		channelID: channelID,
	}
}

// NewGeminiForTest creates a Gemini config for testing purposes
func NewGeminiForTest(projectID, location string) *Gemini {
	return &Gemini{
		projectID: projectID,
		location:  location,
	}
}

// NewRepositoryForTest creates a Repository config for testing purposes
func NewRepositoryForTest(backend, sqlitePath, projectID string) *Repository {
	return &Repository{
		backend:    backend,
		sqlitePath: sqlitePath,
		projectID:  projectID,
	}
}

// NewLoggerForTest creates a Logger config for testing purposes
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}

// NewSettingsForTest creates a Settings config for testing purposes
func NewSettingsForTest(path string, strict bool) *Settings {
	return &Settings{
		path:             path,
		strictReferences: strict,
	}
}

// NewExportForTest creates an Export config for testing purposes
func NewExportForTest(destination string) *Export {
	return &Export{destination: destination}
}
