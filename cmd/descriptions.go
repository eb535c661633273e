package cmd

const rootLongDescription = `Remedy pairs a linter with a chat completion service to repair the
findings the linter cannot fix on its own.

A run has three phases:
  1. format   the linter formats the tree in place
  2. check    the linter applies its own autofixes and reports what is left
  3. fix      every remaining finding is sent to the model, file by file

Files are remediated concurrently, one work unit per file. Within a file the
issues are fixed in report order, each fix building on the previous content,
and the file is written back exactly once at the end.

Examples:
  remedy ./src                       fix everything under ./src
  remedy -p 4 --dry-run ./src        at most 4 files at a time, keep disk untouched
  remedy -x '_test\.py$' ./src       skip files matching the pattern
  remedy -i E501,F401 ./src          skip specific issue codes`

const fixLongDescription = `Format the tree, run the linter with autofixes enabled, and remediate
every remaining finding through the chat completion service.

Fix failures never stop the run: a failed request leaves the file content
as it was and the next issue is attempted. A file that cannot be read or
written is reported and skipped without affecting other files.`

const checkLongDescription = `Run the linter in report-only mode and list the findings that a fix run
would remediate. No formatting is applied, no autofixes run, and no file
is modified.`
