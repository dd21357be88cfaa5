// Package remote finds the git origin remote of a project and classifies its
// hosting provider.
package remote

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/transport"

	"github.com/conn-castle/create-release-it/internal/messages"
)

const (
	// GitHubHost is the public GitHub host.
	GitHubHost = "github.com"
	// GitLabHost is the public GitLab host.
	GitLabHost = "gitlab.com"
)

// Host is the hosting provider classification of a remote URL.
type Host struct {
	GitHub bool
	GitLab bool
}

// Hosts lists additional self-hosted domains per provider.
type Hosts struct {
	GitHub []string
	GitLab []string
}

// OriginURL returns the first URL of the origin remote of the repository
// containing dir. found is false when dir is not inside a repository or the
// repository has no origin remote.
func OriginURL(dir string) (url string, found bool, err error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return "", false, nil
		}
		return "", false, fmt.Errorf(messages.RemoteOpenRepoFailedFmt, dir, err)
	}
	origin, err := repo.Remote(git.DefaultRemoteName)
	if err != nil {
		if errors.Is(err, git.ErrRemoteNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf(messages.RemoteLookupFailedFmt, git.DefaultRemoteName, err)
	}
	for _, candidate := range origin.Config().URLs {
		if trimmed := strings.TrimSpace(candidate); trimmed != "" {
			return trimmed, true, nil
		}
	}
	return "", false, nil
}

// ParseHost extracts the lower-cased host of a git remote URL. scp-like
// (git@host:org/repo.git), ssh://, git://, http:// and https:// forms are
// accepted.
func ParseHost(rawURL string) (string, error) {
	endpoint, err := transport.NewEndpoint(strings.TrimSpace(rawURL))
	if err != nil {
		return "", fmt.Errorf(messages.RemoteParseFailedFmt, rawURL, err)
	}
	host := normalizeHost(endpoint.Host)
	if host == "" {
		return "", fmt.Errorf(messages.RemoteNoHostFmt, rawURL)
	}
	return host, nil
}

// Classify reports which provider hosts rawURL. extra adds self-hosted
// domains to the public github.com and gitlab.com hosts. A URL that cannot be
// parsed belongs to neither provider.
func Classify(rawURL string, extra Hosts) Host {
	host, err := ParseHost(rawURL)
	if err != nil {
		return Host{}
	}
	return Host{
		GitHub: matchHost(host, GitHubHost, extra.GitHub),
		GitLab: matchHost(host, GitLabHost, extra.GitLab),
	}
}

func matchHost(host string, public string, extra []string) bool {
	if host == public {
		return true
	}
	for _, candidate := range extra {
		if host == normalizeHost(candidate) {
			return true
		}
	}
	return false
}

func normalizeHost(host string) string {
	host = strings.ToLower(strings.TrimSpace(host))
	return strings.TrimPrefix(host, "www.")
}
