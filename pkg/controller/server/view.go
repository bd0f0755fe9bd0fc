package server

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octolens/pkg/domain/interfaces"
	"github.com/m-mizutani/octolens/pkg/domain/model"
	"github.com/m-mizutani/octolens/pkg/utils/errutil"
)

// The page is a pure function of the lookup state: a search form shown
// unconditionally, the profile section dispatched on the active Result
// variant, and the repository section that only the Found variant renders.

const notFoundMessage = "No user found with that username."
const noRequestMessage = "You haven't made any requests yet. Search for a GitHub user above."

var pageTmpl = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>octolens</title>
	<style>
		body { font-family: system-ui, -apple-system, sans-serif; margin: 0 auto; max-width: 640px; padding: 24px; color: #24292f; }
		form { display: flex; gap: 8px; margin-bottom: 24px; }
		input[type="text"] { flex: 1; padding: 8px; border: 1px solid #d0d7de; border-radius: 6px; }
		button { padding: 8px 16px; border: 0; border-radius: 6px; background: #1f883d; color: white; cursor: pointer; }
		.profile { display: flex; gap: 16px; align-items: center; }
		.avatar { width: 96px; height: 96px; border-radius: 50%; }
		.bio { color: #57606a; }
		.message { color: #57606a; }
		.repos { margin-top: 24px; }
		.repos li { margin: 4px 0; }
		.history { margin-top: 32px; border-top: 1px solid #d0d7de; padding-top: 16px; font-size: 0.9em; color: #57606a; }
	</style>
</head>
<body>
	<h1>octolens</h1>
	<form method="post" action="/lookup">
		<input type="text" name="search-term" placeholder="GitHub username" aria-label="GitHub username">
		<button type="submit">Search</button>
	</form>
	{{.Profile}}
	{{.RepoList}}
	{{if .History}}<div class="history">
		<h3>Recent lookups</h3>
		<ul>
		{{range .History}}<li>{{.Username}}{{if not .Found}} (not found){{end}}</li>
		{{end}}</ul>
	</div>{{end}}
</body>
</html>
`))

var profileTmpl = template.Must(template.New("profile").Parse(`<div class="profile">
	<img class="avatar" src="{{.AvatarURL}}" alt="avatar">
	<div>
		<h2>{{.Name}}</h2>
		<p class="bio">{{.Bio}}</p>
	</div>
</div>
`))

var repoListTmpl = template.Must(template.New("repos").Parse(`<div class="repos">
	<h3>Top repositories</h3>
	<ul>
	{{range .}}<li><a href="{{.URL}}">{{.Name}}</a></li>
	{{end}}</ul>
</div>
`))

type pageData struct {
	Profile  template.HTML
	RepoList template.HTML
	History  []*model.LookupRecord
}

// renderProfile handles each Result variant exhaustively.
func renderProfile(result model.Result) (template.HTML, error) {
	switch v := result.(type) {
	case model.Found:
		var buf strings.Builder
		if err := profileTmpl.Execute(&buf, v); err != nil {
			return "", goerr.Wrap(err, "failed to render profile")
		}
		return template.HTML(buf.String()), nil

	case model.NotFound:
		return `<p class="message">` + notFoundMessage + `</p>`, nil

	case model.NoRequestYet:
		return `<p class="message">` + noRequestMessage + `</p>`, nil

	default:
		return "", goerr.New("unknown result variant", goerr.V("result", result))
	}
}

// renderRepoList renders nothing unless the Found variant is active.
func renderRepoList(result model.Result, repos []model.RepoSummary) (template.HTML, error) {
	switch result.(type) {
	case model.Found:
		if len(repos) == 0 {
			return "", nil
		}
		var buf strings.Builder
		if err := repoListTmpl.Execute(&buf, repos); err != nil {
			return "", goerr.Wrap(err, "failed to render repo list")
		}
		return template.HTML(buf.String()), nil

	case model.NotFound, model.NoRequestYet:
		return "", nil

	default:
		return "", goerr.New("unknown result variant", goerr.V("result", result))
	}
}

func renderPage(w http.ResponseWriter, r *http.Request, uc interfaces.UseCase, historyLimit int) {
	state := uc.State()

	profile, err := renderProfile(state.Result)
	if err != nil {
		errutil.HandleError(r.Context(), "failed to render profile", err)
		safeWrite(w, http.StatusInternalServerError, []byte("render error"))
		return
	}

	repoList, err := renderRepoList(state.Result, state.Repos)
	if err != nil {
		errutil.HandleError(r.Context(), "failed to render repo list", err)
		safeWrite(w, http.StatusInternalServerError, []byte("render error"))
		return
	}

	history, err := uc.History(r.Context(), historyLimit)
	if err != nil {
		// history is decoration, the page renders without it
		errutil.HandleError(r.Context(), "failed to load lookup history", err)
	}

	var buf strings.Builder
	if err := pageTmpl.Execute(&buf, pageData{
		Profile:  profile,
		RepoList: repoList,
		History:  history,
	}); err != nil {
		errutil.HandleError(r.Context(), "failed to render page", err)
		safeWrite(w, http.StatusInternalServerError, []byte("render error"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	safeWrite(w, http.StatusOK, []byte(buf.String()))
}
