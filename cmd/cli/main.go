// Command wf is a CLI client for the worldforge service.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// ---- config/token store ----

type tokenFile struct {
	AccessToken string    `json:"access_token"`
	ExpiresAt   time.Time `json:"expires_at"`
}

func cfgDir() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return filepath.Join(v, "worldforge")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "worldforge")
}

func tokenPath() string { return filepath.Join(cfgDir(), "token.json") }

func saveToken(tok string, exp time.Time) error {
	_ = os.MkdirAll(cfgDir(), 0o700)
	f, err := os.Create(tokenPath())
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(tokenFile{AccessToken: tok, ExpiresAt: exp})
}

func loadToken() (string, error) {
	b, err := os.ReadFile(tokenPath())
	if err != nil {
		return "", err
	}
	var tf tokenFile
	if err := json.Unmarshal(b, &tf); err != nil {
		return "", err
	}
	if tf.AccessToken == "" || time.Now().After(tf.ExpiresAt) {
		return "", errors.New("no valid token (login required)")
	}
	return tf.AccessToken, nil
}

// ---- http client ----

type client struct {
	base   string
	bearer string
	http   *http.Client
}

func newClient(base, bearer string) *client {
	return &client{base: base, bearer: bearer, http: &http.Client{Timeout: 30 * time.Second}}
}

// do sends a JSON request and decodes the JSON response into out (may be nil).
// Non-2xx responses are returned as errors carrying the server's error code.
func (c *client) do(ctx context.Context, method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		b, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.base+path, body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.bearer != "" {
		req.Header.Set("Authorization", "Bearer "+c.bearer)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		if json.NewDecoder(resp.Body).Decode(&apiErr) == nil && apiErr.Error != "" {
			if apiErr.Message != "" {
				return fmt.Errorf("%s: %s", apiErr.Error, apiErr.Message)
			}
			return errors.New(apiErr.Error)
		}
		return fmt.Errorf("http %d", resp.StatusCode)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// ---- DTOs (mirror the server API) ----

type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type worldInfo struct {
	ID     int64  `json:"id"`
	Name   string `json:"worldName"`
	UserID int64  `json:"userId"`
}

type tileInfo struct {
	TileType string `json:"tileType"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
}

// ---- utils ----

func readAll(p string) ([]byte, error) {
	if p == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(p)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func usage() {
	fmt.Fprintf(os.Stderr, `wf CLI
Usage:
  wf -server URL <cmd> [args]

Commands:
  version
  register      -u <username> -p <password>
  login         -u <username> -p <password>        (saves token)
  worlds        list
  worlds        create -name <name>
  worlds        get    -id <world-id>
  worlds        rm     -id <world-id>
  tiles         get    -world <world-id>
  tiles         put    -world <world-id> -file <tiles.json|->
`)
	os.Exit(2)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

func authClient(base string) *client {
	tok, err := loadToken()
	if err != nil {
		fatal(err)
	}
	return newClient(base, tok)
}

// ---- main ----

var (
	version   = "dev"
	buildDate = "unknown"
)

// main dispatches subcommands against the HTTP API.
func main() {
	server := flag.String("server", "http://localhost:8080", "server base URL")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
	}
	cmd := flag.Arg(0)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	switch cmd {

	case "version":
		fmt.Printf("wf %s (%s)\n", version, buildDate)

	case "register":
		fs := flag.NewFlagSet("register", flag.ExitOnError)
		u := fs.String("u", "", "username")
		p := fs.String("p", "", "password")
		_ = fs.Parse(flag.Args()[1:])
		if *u == "" || *p == "" {
			usage()
		}
		var out struct {
			Message string `json:"message"`
		}
		if err := newClient(*server, "").do(ctx, http.MethodPost, "/api/auth/register", credentialsReq{*u, *p}, &out); err != nil {
			fatal(err)
		}
		fmt.Println(out.Message)

	case "login":
		fs := flag.NewFlagSet("login", flag.ExitOnError)
		u := fs.String("u", "", "username")
		p := fs.String("p", "", "password")
		_ = fs.Parse(flag.Args()[1:])
		if *u == "" || *p == "" {
			usage()
		}
		var out struct {
			Token string `json:"token"`
		}
		if err := newClient(*server, "").do(ctx, http.MethodPost, "/api/auth/login", credentialsReq{*u, *p}, &out); err != nil {
			fatal(err)
		}
		// the server does not echo the expiry; tokens live for a day
		if err := saveToken(out.Token, time.Now().Add(23*time.Hour)); err != nil {
			fatal(err)
		}
		fmt.Println("logged in")

	case "worlds":
		if flag.NArg() < 2 {
			usage()
		}
		c := authClient(*server)
		switch flag.Arg(1) {
		case "list":
			var out []worldInfo
			if err := c.do(ctx, http.MethodGet, "/api/worlds/overview", nil, &out); err != nil {
				fatal(err)
			}
			printJSON(out)
		case "create":
			fs := flag.NewFlagSet("worlds create", flag.ExitOnError)
			name := fs.String("name", "", "world name (1..25 chars)")
			_ = fs.Parse(flag.Args()[2:])
			if *name == "" {
				usage()
			}
			in := struct {
				WorldName string `json:"worldName"`
			}{*name}
			var out struct {
				Message string `json:"message"`
			}
			if err := c.do(ctx, http.MethodPost, "/api/worlds/create", in, &out); err != nil {
				fatal(err)
			}
			fmt.Println(out.Message)
		case "get":
			fs := flag.NewFlagSet("worlds get", flag.ExitOnError)
			id := fs.Int64("id", 0, "world id")
			_ = fs.Parse(flag.Args()[2:])
			var out worldInfo
			if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/worlds/%d", *id), nil, &out); err != nil {
				fatal(err)
			}
			printJSON(out)
		case "rm":
			fs := flag.NewFlagSet("worlds rm", flag.ExitOnError)
			id := fs.Int64("id", 0, "world id")
			_ = fs.Parse(flag.Args()[2:])
			var out struct {
				Message string `json:"message"`
			}
			if err := c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/worlds/%d", *id), nil, &out); err != nil {
				fatal(err)
			}
			fmt.Println(out.Message)
		default:
			usage()
		}

	case "tiles":
		if flag.NArg() < 2 {
			usage()
		}
		c := authClient(*server)
		switch flag.Arg(1) {
		case "get":
			fs := flag.NewFlagSet("tiles get", flag.ExitOnError)
			world := fs.Int64("world", 0, "world id")
			_ = fs.Parse(flag.Args()[2:])
			var out []tileInfo
			if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/worlds/%d/tiles", *world), nil, &out); err != nil {
				fatal(err)
			}
			printJSON(out)
		case "put":
			fs := flag.NewFlagSet("tiles put", flag.ExitOnError)
			world := fs.Int64("world", 0, "world id")
			file := fs.String("file", "-", "JSON file with a tiles array, or - for stdin")
			_ = fs.Parse(flag.Args()[2:])
			raw, err := readAll(*file)
			if err != nil {
				fatal(err)
			}
			var tiles []tileInfo
			if err := json.Unmarshal(raw, &tiles); err != nil {
				fatal(fmt.Errorf("parse %s: %w", *file, err))
			}
			in := struct {
				Tiles []tileInfo `json:"tiles"`
			}{tiles}
			var out struct {
				Message string `json:"message"`
			}
			if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/worlds/%d/tiles", *world), in, &out); err != nil {
				fatal(err)
			}
			fmt.Println(out.Message)
		default:
			usage()
		}

	default:
		usage()
	}
}
