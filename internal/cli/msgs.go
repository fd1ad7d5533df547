package cli

// Command descriptions and fixed output strings
const (
	MsgRootShort = "Link and verify your dotfiles environment"
	MsgRootLong  = `dotup materializes a dotfiles repository onto a machine: it creates
symbolic links from repo-tracked config files to their home-directory
locations, audits the dependencies your shell setup relies on, and gates
commits on a hardcoded home-path scan.

Run without a subcommand to start the interactive wizard.`

	MsgLinkShort = "Link selected targets non-interactively"
	MsgLinkLong  = `Create symlinks for the given target keys (or every target with --all)
using a uniform conflict mode:

  skip       leave existing targets untouched (default)
  backup     rename existing targets to a timestamped backup, then link
  overwrite  remove existing targets, then link

Destructive modes ask for confirmation once up front; only 'y' or 'Y'
proceeds.`
	MsgLinkExample = `  # Link everything, keeping whatever already exists
  dotup link --all

  # Link two specific targets, backing up anything in the way
  dotup link .zshrc .gitconfig --mode backup

  # Preview what would happen
  dotup link --all --mode overwrite --dry-run`

	MsgVerifyShort = "Run all verification checks on your environment"
	MsgVerifyLong  = `Verify never mutates anything. It checks symlink health, declared
dependencies, configuration validity, hardcoded home paths, commit
signing, and the pre-commit hook, then exits non-zero if anything
failed. Use --links-only for the fast symlink-only health check.`

	MsgListShort = "List available link targets and current status"

	MsgCheckShort = "Scan files for hardcoded home-directory paths"
	MsgCheckLong  = `Scan the given files for absolute /Users/<name> or /home/<name>
references and print every violation with file and line. Exits 1 if any
violation is found. Non-existent paths are skipped so the command can run
over staged-file lists that include deletions.

This is the pre-commit hook entry point.`

	MsgDepsShort = "Audit the dependencies referenced by an rc file"
	MsgDepsLong  = `Run the configured dependency checks against an rc file (defaults to
./.zshrc, then ~/.zshrc). Checks whose pattern does not appear in any
non-comment line of the rc file are skipped rather than failed.`

	MsgGenconfigShort = "Print a starter dotup.toml"

	MsgVersionShort = "Print version information"

	// Status messages
	MsgDryRunNotice  = "\nDRY RUN MODE - No changes were made"
	MsgAborted       = "Aborted. No changes made."
	MsgNoTargets     = "No targets specified. Use --all or run the wizard."
	MsgAlreadyLinked = "already linked"
)
