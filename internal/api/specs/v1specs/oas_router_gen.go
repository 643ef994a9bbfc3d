// Code generated by ogen, DO NOT EDIT.

package v1specs

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/ogen-go/ogen/uri"
)

func (s *Server) cutPrefix(path string) (string, bool) {
	prefix := s.cfg.Prefix
	if prefix == "" {
		return path, true
	}
	if !strings.HasPrefix(path, prefix) {
		// Prefix doesn't match.
		return "", false
	}
	// Cut prefix from the path.
	return strings.TrimPrefix(path, prefix), true
}

// ServeHTTP serves http request as defined by OpenAPI v3 specification,
// calling handler that matches the path or returning not found error.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	elem := r.URL.Path
	elemIsEscaped := false
	if rawPath := r.URL.RawPath; rawPath != "" {
		if normalized, ok := uri.NormalizeEscapedPath(rawPath); ok {
			elem = normalized
			elemIsEscaped = strings.ContainsRune(elem, '%')
		}
	}

	elem, ok := s.cutPrefix(elem)
	if !ok || len(elem) == 0 {
		s.notFound(w, r)
		return
	}
	args := [3]string{}

	// Static code generated router with unwrapped path search.
	switch {
	default:
		if len(elem) == 0 {
			break
		}
		switch elem[0] {
		case '/': // Prefix: "/"

			if l := len("/"); len(elem) >= l && elem[0:l] == "/" {
				elem = elem[l:]
			} else {
				break
			}

			if len(elem) == 0 {
				break
			}
			switch elem[0] {
			case 'c': // Prefix: "campaigns"

				if l := len("campaigns"); len(elem) >= l && elem[0:l] == "campaigns" {
					elem = elem[l:]
				} else {
					break
				}

				if len(elem) == 0 {
					switch r.Method {
					case "GET":
						s.handleListCampaignsRequest([0]string{}, elemIsEscaped, w, r)
					case "POST":
						s.handleCreateCampaignRequest([0]string{}, elemIsEscaped, w, r)
					default:
						s.notAllowed(w, r, "GET,POST")
					}

					return
				}
				switch elem[0] {
				case '/': // Prefix: "/"

					if l := len("/"); len(elem) >= l && elem[0:l] == "/" {
						elem = elem[l:]
					} else {
						break
					}

					// Param: "campaignID"
					// Match until "/"
					idx := strings.IndexByte(elem, '/')
					if idx < 0 {
						idx = len(elem)
					}
					args[0] = elem[:idx]
					elem = elem[idx:]

					if len(elem) == 0 {
						switch r.Method {
						case "DELETE":
							s.handleDeleteCampaignRequest([1]string{
								args[0],
							}, elemIsEscaped, w, r)
						case "GET":
							s.handleGetCampaignRequest([1]string{
								args[0],
							}, elemIsEscaped, w, r)
						case "PATCH":
							s.handleUpdateCampaignRequest([1]string{
								args[0],
							}, elemIsEscaped, w, r)
						default:
							s.notAllowed(w, r, "DELETE,GET,PATCH")
						}

						return
					}
					switch elem[0] {
					case '/': // Prefix: "/"

						if l := len("/"); len(elem) >= l && elem[0:l] == "/" {
							elem = elem[l:]
						} else {
							break
						}

						if len(elem) == 0 {
							break
						}
						switch elem[0] {
						case 'c': // Prefix: "contacts/extract"

							if l := len("contacts/extract"); len(elem) >= l && elem[0:l] == "contacts/extract" {
								elem = elem[l:]
							} else {
								break
							}

							if len(elem) == 0 {
								// Leaf node.
								switch r.Method {
								case "POST":
									s.handleExtractContactsRequest([1]string{
										args[0],
									}, elemIsEscaped, w, r)
								default:
									s.notAllowed(w, r, "POST")
								}

								return
							}

						case 'd': // Prefix: "de"

							if l := len("de"); len(elem) >= l && elem[0:l] == "de" {
								elem = elem[l:]
							} else {
								break
							}

							if len(elem) == 0 {
								break
							}
							switch elem[0] {
							case 's': // Prefix: "scription"

								if l := len("scription"); len(elem) >= l && elem[0:l] == "scription" {
									elem = elem[l:]
								} else {
									break
								}

								if len(elem) == 0 {
									// Leaf node.
									switch r.Method {
									case "POST":
										s.handleGenerateDescriptionRequest([1]string{
											args[0],
										}, elemIsEscaped, w, r)
									default:
										s.notAllowed(w, r, "POST")
									}

									return
								}

							case 't': // Prefix: "tails"

								if l := len("tails"); len(elem) >= l && elem[0:l] == "tails" {
									elem = elem[l:]
								} else {
									break
								}

								if len(elem) == 0 {
									// Leaf node.
									switch r.Method {
									case "GET":
										s.handleGetCampaignDetailsRequest([1]string{
											args[0],
										}, elemIsEscaped, w, r)
									default:
										s.notAllowed(w, r, "GET")
									}

									return
								}

							}

						case 'l': // Prefix: "launch"

							if l := len("launch"); len(elem) >= l && elem[0:l] == "launch" {
								elem = elem[l:]
							} else {
								break
							}

							if len(elem) == 0 {
								// Leaf node.
								switch r.Method {
								case "POST":
									s.handleLaunchCampaignRequest([1]string{
										args[0],
									}, elemIsEscaped, w, r)
								default:
									s.notAllowed(w, r, "POST")
								}

								return
							}

						}

					}

				}

			case 'd': // Prefix: "debug/campaigns/"

				if l := len("debug/campaigns/"); len(elem) >= l && elem[0:l] == "debug/campaigns/" {
					elem = elem[l:]
				} else {
					break
				}

				// Param: "campaignID"
				// Match until "/"
				idx := strings.IndexByte(elem, '/')
				if idx < 0 {
					idx = len(elem)
				}
				args[0] = elem[:idx]
				elem = elem[idx:]

				if len(elem) == 0 {
					break
				}
				switch elem[0] {
				case '/': // Prefix: "/inbox"

					if l := len("/inbox"); len(elem) >= l && elem[0:l] == "/inbox" {
						elem = elem[l:]
					} else {
						break
					}

					if len(elem) == 0 {
						// Leaf node.
						switch r.Method {
						case "GET":
							s.handleGetInboxStatusRequest([1]string{
								args[0],
							}, elemIsEscaped, w, r)
						default:
							s.notAllowed(w, r, "GET")
						}

						return
					}

				}

			case 'i': // Prefix: "inbox"

				if l := len("inbox"); len(elem) >= l && elem[0:l] == "inbox" {
					elem = elem[l:]
				} else {
					break
				}

				if len(elem) == 0 {
					switch r.Method {
					case "GET":
						s.handleGetInboxOverviewRequest([0]string{}, elemIsEscaped, w, r)
					default:
						s.notAllowed(w, r, "GET")
					}

					return
				}
				switch elem[0] {
				case '/': // Prefix: "/"

					if l := len("/"); len(elem) >= l && elem[0:l] == "/" {
						elem = elem[l:]
					} else {
						break
					}

					if len(elem) == 0 {
						break
					}
					switch elem[0] {
					case 'b': // Prefix: "backfill"
						origElem := elem
						if l := len("backfill"); len(elem) >= l && elem[0:l] == "backfill" {
							elem = elem[l:]
						} else {
							break
						}

						if len(elem) == 0 {
							// Leaf node.
							switch r.Method {
							case "POST":
								s.handleBackfillInboxRequest([0]string{}, elemIsEscaped, w, r)
							default:
								s.notAllowed(w, r, "POST")
							}

							return
						}

						elem = origElem
					case 'c': // Prefix: "cleanup"
						origElem := elem
						if l := len("cleanup"); len(elem) >= l && elem[0:l] == "cleanup" {
							elem = elem[l:]
						} else {
							break
						}

						if len(elem) == 0 {
							// Leaf node.
							switch r.Method {
							case "POST":
								s.handleCleanupInboxRequest([0]string{}, elemIsEscaped, w, r)
							default:
								s.notAllowed(w, r, "POST")
							}

							return
						}

						elem = origElem
					case 'm': // Prefix: "migrate"
						origElem := elem
						if l := len("migrate"); len(elem) >= l && elem[0:l] == "migrate" {
							elem = elem[l:]
						} else {
							break
						}

						if len(elem) == 0 {
							// Leaf node.
							switch r.Method {
							case "POST":
								s.handleMigrateInboxRequest([0]string{}, elemIsEscaped, w, r)
							default:
								s.notAllowed(w, r, "POST")
							}

							return
						}

						elem = origElem
					}
					// Param: "campaignID"
					// Match until "/"
					idx := strings.IndexByte(elem, '/')
					if idx < 0 {
						idx = len(elem)
					}
					args[0] = elem[:idx]
					elem = elem[idx:]

					if len(elem) == 0 {
						break
					}
					switch elem[0] {
					case '/': // Prefix: "/contacts"

						if l := len("/contacts"); len(elem) >= l && elem[0:l] == "/contacts" {
							elem = elem[l:]
						} else {
							break
						}

						if len(elem) == 0 {
							switch r.Method {
							case "GET":
								s.handleListInboxContactsRequest([1]string{
									args[0],
								}, elemIsEscaped, w, r)
							default:
								s.notAllowed(w, r, "GET")
							}

							return
						}
						switch elem[0] {
						case '/': // Prefix: "/"

							if l := len("/"); len(elem) >= l && elem[0:l] == "/" {
								elem = elem[l:]
							} else {
								break
							}

							// Param: "contactID"
							// Match until "/"
							idx := strings.IndexByte(elem, '/')
							if idx < 0 {
								idx = len(elem)
							}
							args[1] = elem[:idx]
							elem = elem[idx:]

							if len(elem) == 0 {
								break
							}
							switch elem[0] {
							case '/': // Prefix: "/"

								if l := len("/"); len(elem) >= l && elem[0:l] == "/" {
									elem = elem[l:]
								} else {
									break
								}

								if len(elem) == 0 {
									break
								}
								switch elem[0] {
								case 'm': // Prefix: "messages"

									if l := len("messages"); len(elem) >= l && elem[0:l] == "messages" {
										elem = elem[l:]
									} else {
										break
									}

									if len(elem) == 0 {
										switch r.Method {
										case "GET":
											s.handleListThreadMessagesRequest([2]string{
												args[0],
												args[1],
											}, elemIsEscaped, w, r)
										case "POST":
											s.handleSaveThreadMessageRequest([2]string{
												args[0],
												args[1],
											}, elemIsEscaped, w, r)
										default:
											s.notAllowed(w, r, "GET,POST")
										}

										return
									}
									switch elem[0] {
									case '/': // Prefix: "/"

										if l := len("/"); len(elem) >= l && elem[0:l] == "/" {
											elem = elem[l:]
										} else {
											break
										}

										// Param: "messageID"
										// Leaf parameter, slashes are prohibited
										idx := strings.IndexByte(elem, '/')
										if idx >= 0 {
											break
										}
										args[2] = elem
										elem = ""

										if len(elem) == 0 {
											// Leaf node.
											switch r.Method {
											case "DELETE":
												s.handleDeleteThreadMessageRequest([3]string{
													args[0],
													args[1],
													args[2],
												}, elemIsEscaped, w, r)
											default:
												s.notAllowed(w, r, "DELETE")
											}

											return
										}

									}

								case 's': // Prefix: "send"

									if l := len("send"); len(elem) >= l && elem[0:l] == "send" {
										elem = elem[l:]
									} else {
										break
									}

									if len(elem) == 0 {
										// Leaf node.
										switch r.Method {
										case "POST":
											s.handleSendThreadMessageRequest([2]string{
												args[0],
												args[1],
											}, elemIsEscaped, w, r)
										default:
											s.notAllowed(w, r, "POST")
										}

										return
									}

								}

							}

						}

					}

				}

			}

		}
	}
	s.notFound(w, r)
}

// Route is route object.
type Route struct {
	name        string
	summary     string
	operationID string
	pathPattern string
	count       int
	args        [3]string
}

// Name returns ogen operation name.
//
// It is guaranteed to be unique and not empty.
func (r Route) Name() string {
	return r.name
}

// Summary returns OpenAPI summary.
func (r Route) Summary() string {
	return r.summary
}

// OperationID returns OpenAPI operationId.
func (r Route) OperationID() string {
	return r.operationID
}

// PathPattern returns OpenAPI path.
func (r Route) PathPattern() string {
	return r.pathPattern
}

// Args returns parsed arguments.
func (r Route) Args() []string {
	return r.args[:r.count]
}

// FindRoute finds Route for given method and path.
//
// Note: this method does not unescape path or handle reserved characters in path properly. Use FindPath instead.
func (s *Server) FindRoute(method, path string) (Route, bool) {
	return s.FindPath(method, &url.URL{Path: path})
}

// FindPath finds Route for given method and URL.
func (s *Server) FindPath(method string, u *url.URL) (r Route, _ bool) {
	var (
		elem = u.Path
		args = r.args
	)
	if rawPath := u.RawPath; rawPath != "" {
		if normalized, ok := uri.NormalizeEscapedPath(rawPath); ok {
			elem = normalized
		}
		defer func() {
			for i, arg := range r.args[:r.count] {
				if unescaped, err := url.PathUnescape(arg); err == nil {
					r.args[i] = unescaped
				}
			}
		}()
	}

	elem, ok := s.cutPrefix(elem)
	if !ok {
		return r, false
	}

	// Static code generated router with unwrapped path search.
	switch {
	default:
		if len(elem) == 0 {
			break
		}
		switch elem[0] {
		case '/': // Prefix: "/"

			if l := len("/"); len(elem) >= l && elem[0:l] == "/" {
				elem = elem[l:]
			} else {
				break
			}

			if len(elem) == 0 {
				break
			}
			switch elem[0] {
			case 'c': // Prefix: "campaigns"

				if l := len("campaigns"); len(elem) >= l && elem[0:l] == "campaigns" {
					elem = elem[l:]
				} else {
					break
				}

				if len(elem) == 0 {
					switch method {
					case "GET":
						r.name = ListCampaignsOperation
						r.summary = "List campaigns, newest first"
						r.operationID = "listCampaigns"
						r.pathPattern = "/campaigns"
						r.args = args
						r.count = 0
						return r, true
					case "POST":
						r.name = CreateCampaignOperation
						r.summary = "Create a draft campaign"
						r.operationID = "createCampaign"
						r.pathPattern = "/campaigns"
						r.args = args
						r.count = 0
						return r, true
					default:
						return
					}
				}
				switch elem[0] {
				case '/': // Prefix: "/"

					if l := len("/"); len(elem) >= l && elem[0:l] == "/" {
						elem = elem[l:]
					} else {
						break
					}

					// Param: "campaignID"
					// Match until "/"
					idx := strings.IndexByte(elem, '/')
					if idx < 0 {
						idx = len(elem)
					}
					args[0] = elem[:idx]
					elem = elem[idx:]

					if len(elem) == 0 {
						switch method {
						case "DELETE":
							r.name = DeleteCampaignOperation
							r.summary = "Delete a campaign and its inbox"
							r.operationID = "deleteCampaign"
							r.pathPattern = "/campaigns/{campaignID}"
							r.args = args
							r.count = 1
							return r, true
						case "GET":
							r.name = GetCampaignOperation
							r.summary = "Get a campaign"
							r.operationID = "getCampaign"
							r.pathPattern = "/campaigns/{campaignID}"
							r.args = args
							r.count = 1
							return r, true
						case "PATCH":
							r.name = UpdateCampaignOperation
							r.summary = "Update a campaign; launched campaigns resync their inbox"
							r.operationID = "updateCampaign"
							r.pathPattern = "/campaigns/{campaignID}"
							r.args = args
							r.count = 1
							return r, true
						default:
							return
						}
					}
					switch elem[0] {
					case '/': // Prefix: "/"

						if l := len("/"); len(elem) >= l && elem[0:l] == "/" {
							elem = elem[l:]
						} else {
							break
						}

						if len(elem) == 0 {
							break
						}
						switch elem[0] {
						case 'c': // Prefix: "contacts/extract"

							if l := len("contacts/extract"); len(elem) >= l && elem[0:l] == "contacts/extract" {
								elem = elem[l:]
							} else {
								break
							}

							if len(elem) == 0 {
								// Leaf node.
								switch method {
								case "POST":
									r.name = ExtractContactsOperation
									r.summary = "Extract contacts from the uploaded CSV or Excel file"
									r.operationID = "extractContacts"
									r.pathPattern = "/campaigns/{campaignID}/contacts/extract"
									r.args = args
									r.count = 1
									return r, true
								default:
									return
								}
							}

						case 'd': // Prefix: "de"

							if l := len("de"); len(elem) >= l && elem[0:l] == "de" {
								elem = elem[l:]
							} else {
								break
							}

							if len(elem) == 0 {
								break
							}
							switch elem[0] {
							case 's': // Prefix: "scription"

								if l := len("scription"); len(elem) >= l && elem[0:l] == "scription" {
									elem = elem[l:]
								} else {
									break
								}

								if len(elem) == 0 {
									// Leaf node.
									switch method {
									case "POST":
										r.name = GenerateDescriptionOperation
										r.summary = "Rewrite the description with the language model"
										r.operationID = "generateDescription"
										r.pathPattern = "/campaigns/{campaignID}/description"
										r.args = args
										r.count = 1
										return r, true
									default:
										return
									}
								}

							case 't': // Prefix: "tails"

								if l := len("tails"); len(elem) >= l && elem[0:l] == "tails" {
									elem = elem[l:]
								} else {
									break
								}

								if len(elem) == 0 {
									// Leaf node.
									switch method {
									case "GET":
										r.name = GetCampaignDetailsOperation
										r.summary = "Content sent to each contact"
										r.operationID = "getCampaignDetails"
										r.pathPattern = "/campaigns/{campaignID}/details"
										r.args = args
										r.count = 1
										return r, true
									default:
										return
									}
								}

							}

						case 'l': // Prefix: "launch"

							if l := len("launch"); len(elem) >= l && elem[0:l] == "launch" {
								elem = elem[l:]
							} else {
								break
							}

							if len(elem) == 0 {
								// Leaf node.
								switch method {
								case "POST":
									r.name = LaunchCampaignOperation
									r.summary = "Launch a campaign and queue its inbox fan-out"
									r.operationID = "launchCampaign"
									r.pathPattern = "/campaigns/{campaignID}/launch"
									r.args = args
									r.count = 1
									return r, true
								default:
									return
								}
							}

						}

					}

				}

			case 'd': // Prefix: "debug/campaigns/"

				if l := len("debug/campaigns/"); len(elem) >= l && elem[0:l] == "debug/campaigns/" {
					elem = elem[l:]
				} else {
					break
				}

				// Param: "campaignID"
				// Match until "/"
				idx := strings.IndexByte(elem, '/')
				if idx < 0 {
					idx = len(elem)
				}
				args[0] = elem[:idx]
				elem = elem[idx:]

				if len(elem) == 0 {
					break
				}
				switch elem[0] {
				case '/': // Prefix: "/inbox"

					if l := len("/inbox"); len(elem) >= l && elem[0:l] == "/inbox" {
						elem = elem[l:]
					} else {
						break
					}

					if len(elem) == 0 {
						// Leaf node.
						switch method {
						case "GET":
							r.name = GetInboxStatusOperation
							r.summary = "Compare a campaign's contacts with its stored inbox"
							r.operationID = "getInboxStatus"
							r.pathPattern = "/debug/campaigns/{campaignID}/inbox"
							r.args = args
							r.count = 1
							return r, true
						default:
							return
						}
					}

				}

			case 'i': // Prefix: "inbox"

				if l := len("inbox"); len(elem) >= l && elem[0:l] == "inbox" {
					elem = elem[l:]
				} else {
					break
				}

				if len(elem) == 0 {
					switch method {
					case "GET":
						r.name = GetInboxOverviewOperation
						r.summary = "Launched campaigns with their contacts"
						r.operationID = "getInboxOverview"
						r.pathPattern = "/inbox"
						r.args = args
						r.count = 0
						return r, true
					default:
						return
					}
				}
				switch elem[0] {
				case '/': // Prefix: "/"

					if l := len("/"); len(elem) >= l && elem[0:l] == "/" {
						elem = elem[l:]
					} else {
						break
					}

					if len(elem) == 0 {
						break
					}
					switch elem[0] {
					case 'b': // Prefix: "backfill"
						origElem := elem
						if l := len("backfill"); len(elem) >= l && elem[0:l] == "backfill" {
							elem = elem[l:]
						} else {
							break
						}

						if len(elem) == 0 {
							// Leaf node.
							switch method {
							case "POST":
								r.name = BackfillInboxOperation
								r.summary = "Create missing threads and re-seed every launched campaign"
								r.operationID = "backfillInbox"
								r.pathPattern = "/inbox/backfill"
								r.args = args
								r.count = 0
								return r, true
							default:
								return
							}
						}

						elem = origElem
					case 'c': // Prefix: "cleanup"
						origElem := elem
						if l := len("cleanup"); len(elem) >= l && elem[0:l] == "cleanup" {
							elem = elem[l:]
						} else {
							break
						}

						if len(elem) == 0 {
							// Leaf node.
							switch method {
							case "POST":
								r.name = CleanupInboxOperation
								r.summary = "Delete every inbox of the user"
								r.operationID = "cleanupInbox"
								r.pathPattern = "/inbox/cleanup"
								r.args = args
								r.count = 0
								return r, true
							default:
								return
							}
						}

						elem = origElem
					case 'm': // Prefix: "migrate"
						origElem := elem
						if l := len("migrate"); len(elem) >= l && elem[0:l] == "migrate" {
							elem = elem[l:]
						} else {
							break
						}

						if len(elem) == 0 {
							// Leaf node.
							switch method {
							case "POST":
								r.name = MigrateInboxOperation
								r.summary = "Materialize inboxes of every launched campaign"
								r.operationID = "migrateInbox"
								r.pathPattern = "/inbox/migrate"
								r.args = args
								r.count = 0
								return r, true
							default:
								return
							}
						}

						elem = origElem
					}
					// Param: "campaignID"
					// Match until "/"
					idx := strings.IndexByte(elem, '/')
					if idx < 0 {
						idx = len(elem)
					}
					args[0] = elem[:idx]
					elem = elem[idx:]

					if len(elem) == 0 {
						break
					}
					switch elem[0] {
					case '/': // Prefix: "/contacts"

						if l := len("/contacts"); len(elem) >= l && elem[0:l] == "/contacts" {
							elem = elem[l:]
						} else {
							break
						}

						if len(elem) == 0 {
							switch method {
							case "GET":
								r.name = ListInboxContactsOperation
								r.summary = "Threads of a campaign"
								r.operationID = "listInboxContacts"
								r.pathPattern = "/inbox/{campaignID}/contacts"
								r.args = args
								r.count = 1
								return r, true
							default:
								return
							}
						}
						switch elem[0] {
						case '/': // Prefix: "/"

							if l := len("/"); len(elem) >= l && elem[0:l] == "/" {
								elem = elem[l:]
							} else {
								break
							}

							// Param: "contactID"
							// Match until "/"
							idx := strings.IndexByte(elem, '/')
							if idx < 0 {
								idx = len(elem)
							}
							args[1] = elem[:idx]
							elem = elem[idx:]

							if len(elem) == 0 {
								break
							}
							switch elem[0] {
							case '/': // Prefix: "/"

								if l := len("/"); len(elem) >= l && elem[0:l] == "/" {
									elem = elem[l:]
								} else {
									break
								}

								if len(elem) == 0 {
									break
								}
								switch elem[0] {
								case 'm': // Prefix: "messages"

									if l := len("messages"); len(elem) >= l && elem[0:l] == "messages" {
										elem = elem[l:]
									} else {
										break
									}

									if len(elem) == 0 {
										switch method {
										case "GET":
											r.name = ListThreadMessagesOperation
											r.summary = "Messages of a thread, oldest first"
											r.operationID = "listThreadMessages"
											r.pathPattern = "/inbox/{campaignID}/contacts/{contactID}/messages"
											r.args = args
											r.count = 2
											return r, true
										case "POST":
											r.name = SaveThreadMessageOperation
											r.summary = "Store a message in a thread"
											r.operationID = "saveThreadMessage"
											r.pathPattern = "/inbox/{campaignID}/contacts/{contactID}/messages"
											r.args = args
											r.count = 2
											return r, true
										default:
											return
										}
									}
									switch elem[0] {
									case '/': // Prefix: "/"

										if l := len("/"); len(elem) >= l && elem[0:l] == "/" {
											elem = elem[l:]
										} else {
											break
										}

										// Param: "messageID"
										// Leaf parameter, slashes are prohibited
										idx := strings.IndexByte(elem, '/')
										if idx >= 0 {
											break
										}
										args[2] = elem
										elem = ""

										if len(elem) == 0 {
											// Leaf node.
											switch method {
											case "DELETE":
												r.name = DeleteThreadMessageOperation
												r.summary = "Delete a message"
												r.operationID = "deleteThreadMessage"
												r.pathPattern = "/inbox/{campaignID}/contacts/{contactID}/messages/{messageID}"
												r.args = args
												r.count = 3
												return r, true
											default:
												return
											}
										}

									}

								case 's': // Prefix: "send"

									if l := len("send"); len(elem) >= l && elem[0:l] == "send" {
										elem = elem[l:]
									} else {
										break
									}

									if len(elem) == 0 {
										// Leaf node.
										switch method {
										case "POST":
											r.name = SendThreadMessageOperation
											r.summary = "Send a user message and schedule the automatic reply"
											r.operationID = "sendThreadMessage"
											r.pathPattern = "/inbox/{campaignID}/contacts/{contactID}/send"
											r.args = args
											r.count = 2
											return r, true
										default:
											return
										}
									}

								}

							}

						}

					}

				}

			}

		}
	}
	return r, false
}
