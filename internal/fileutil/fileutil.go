package fileutil

import "os"

// ReadableByAll is the file permission mode for YAML documents written or
// rewritten in place. Edited files stay readable by other tools and users.
const ReadableByAll os.FileMode = 0o644
