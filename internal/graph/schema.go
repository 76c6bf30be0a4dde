// Package graph adapts GraphQL operations onto the domain mediators. The
// schema is parsed at startup against the root resolver; a mismatch is a
// boot failure, not a request failure.
package graph

// Schema is the gateway's SDL. Nullability mirrors the Go side: pointer
// fields are nullable, value fields are not.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		getAllUser: [User!]
		getUserById(id: String!): User
		userLogin(email: String!, passwordHash: String!): User
		userNetworkLogin(userName: String!, email: String!, image: String): String!
		getUserMusic: [Music!]
		getUserHistory: UserHistory

		getAllMusicOrPagine(page: Int, size: Int): [Music!]
		getMusicByAlbum: [Album!]
		getAllMusicByAlbum(album: String!): [Album!]
		getMusicById(id: String!): Music
		getMusicSearch(search: String!): [Music!]
		getMusicURL(id: String!): String!
		getMusicYoutubeInfo(id: String!): Music

		getAllPlaylist(page: Int, size: Int): [Playlist!]
		getPlaylistById(id: String!): Playlist
		getUserPlaylist: [Playlist!]
		getPlaylistMusic(id: String!): Playlist
		getPlaylistLikes(id: String!): [PlaylistInteraction!]
		getUserLikes(id: String!): PlaylistInteraction
	}

	type Mutation {
		createUser(userName: String!, email: String!, passwordHash: String!): User
		verifyUser(token: String!): User

		uploadMusicByUrl(id: String!): Music
		deleteMusic(id: String!): Music

		createPlaylist(data: PlaylistInput!): Playlist
		updatePlaylist(id: String!, data: PlaylistUpdateInput!): Playlist
		deletePlaylist(id: String!): Playlist
		addMusicToPlaylist(playlistId: String!, musicId: String!): Playlist
		removeMusicFromPlaylist(playlistId: String!, musicId: String!): Playlist
		updateLikes(playlistId: String!, action: String!): PlaylistInteraction
	}

	type User {
		id: String!
		userName: String!
		email: String!
		passwordHash: String!
		token: String
		verify: Boolean!
		image: String
	}

	type Music {
		id: String!
		name: String!
		author: String!
		album: String!
		size: Int!
		duration: Float!
		image: String
		userId: String
	}

	type Album {
		id: String!
		name: String!
		image: String
		author: String!
		music: [Music!]
	}

	type Playlist {
		id: String!
		name: String!
		description: String
		image: String
		userId: String!
		music: [Music!]
	}

	type PlaylistInteraction {
		id: String!
		playlistId: String!
		userId: String!
		action: String!
	}

	type History {
		id: String!
		userId: String!
		musicId: String
		playlistId: String
		albumId: String
		timestamp: String!
		music: Music
		playlist: Playlist
		album: Album
	}

	type UserHistory {
		user: User!
		history: [History!]!
	}

	input PlaylistInput {
		name: String!
		description: String
		image: String
	}

	input PlaylistUpdateInput {
		name: String
		description: String
		image: String
	}
`
